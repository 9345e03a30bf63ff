package domain

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Valid reports whether t is one of the two supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

type Transaction struct {
	ID          int32           `json:"id"`
	UserID      int32           `json:"user_id"`
	Particulars string          `json:"particulars"`
	AmountCents int64           `json:"amount_cents"` // applied as credit or debit per Type
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	CreatedOn   string          `json:"created_on"`
}

// SignedAmount returns the contribution of this transaction to the
// account balance: positive for credits, negative for debits.
func (t *Transaction) SignedAmount() int64 {
	if t.Type == TransactionTypeDebit {
		return -t.AmountCents
	}
	return t.AmountCents
}
