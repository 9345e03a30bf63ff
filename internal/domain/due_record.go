package domain

// DueRecord is an outstanding amount a customer owes the shop. Once
// IsPaid becomes true the record is terminal; AmountDueCents never
// changes after creation.
type DueRecord struct {
	ID                  int32   `json:"id"`
	UserID              int32   `json:"user_id"`
	CustomerName        string  `json:"customer_name"`
	CustomerContact     string  `json:"customer_contact"`
	CustomerCountryCode string  `json:"customer_country_code,omitempty"`
	ProductOrdered      string  `json:"product_ordered"`
	Quantity            int32   `json:"quantity"`
	AmountDueCents      int64   `json:"amount_due_cents"`
	ExpectedPaymentDate string  `json:"expected_payment_date"`
	IsPaid              bool    `json:"is_paid"`
	PaidAt              *string `json:"paid_at,omitempty"`
	CreatedOn           string  `json:"created_on"`
}
