package domain

// Legacy* types mirror the schema of the browser-local store the
// migration batch is exported from, which is why their JSON tags are
// camelCase rather than the snake_case used elsewhere. Legacy IDs are
// opaque strings valid only within a single batch.

type LegacyUser struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	CreatedAt        string `json:"createdAt,omitempty"`
	StoreName        string `json:"storeName,omitempty"`
	StoreAddress     string `json:"storeAddress,omitempty"`
	StoreContact     string `json:"storeContact,omitempty"`
	StoreCountryCode string `json:"storeCountryCode,omitempty"`
	ProfilePhoto     string `json:"profilePhoto,omitempty"`
	ProfileComplete  bool   `json:"profileComplete,omitempty"`
	EmailVerified    bool   `json:"emailVerified,omitempty"`
	PhoneVerified    bool   `json:"phoneVerified,omitempty"`
}

type LegacyReceiptItem struct {
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	PriceCents int64  `json:"price"`
}

type LegacyReceipt struct {
	ID                  string              `json:"id"`
	UserID              string              `json:"userId"`
	ReceiptNumber       string              `json:"receiptNumber"`
	Date                string              `json:"date,omitempty"`
	CustomerName        string              `json:"customerName"`
	CustomerContact     string              `json:"customerContact,omitempty"`
	CustomerCountryCode string              `json:"customerCountryCode,omitempty"`
	PaymentType         string              `json:"paymentType"`
	Notes               string              `json:"notes,omitempty"`
	Items               []LegacyReceiptItem `json:"items"`
	TotalCents          int64               `json:"total"`
	CreatedAt           string              `json:"createdAt,omitempty"`
}

type LegacyTransaction struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Particulars string `json:"particulars"`
	AmountCents int64  `json:"amount"`
	Type        string `json:"type"`
	Date        string `json:"date,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type LegacyDueRecord struct {
	ID                  string `json:"id"`
	UserID              string `json:"userId"`
	CustomerName        string `json:"customerName"`
	CustomerContact     string `json:"customerContact,omitempty"`
	CustomerCountryCode string `json:"customerCountryCode,omitempty"`
	ProductOrdered      string `json:"productOrdered"`
	Quantity            int32  `json:"quantity"`
	AmountDueCents      int64  `json:"amountDue"`
	ExpectedPaymentDate string `json:"expectedPaymentDate,omitempty"`
	IsPaid              bool   `json:"isPaid"`
	PaidAt              string `json:"paidAt,omitempty"`
	CreatedAt           string `json:"createdAt,omitempty"`
}

// MigrationBatch is one snapshot of a legacy client store.
type MigrationBatch struct {
	Users        []LegacyUser        `json:"users"`
	Receipts     []LegacyReceipt     `json:"receipts"`
	Transactions []LegacyTransaction `json:"transactions"`
	DueRecords   []LegacyDueRecord   `json:"dueRecords"`
}

// MigrationStats counts newly inserted records only; records skipped
// because their legacy user could not be resolved, or because a
// duplicate was detected, are not counted.
type MigrationStats struct {
	Users        int32 `json:"users"`
	Receipts     int32 `json:"receipts"`
	Transactions int32 `json:"transactions"`
	DueRecords   int32 `json:"dueRecords"`
}

type MigrationResult struct {
	Success bool           `json:"success"`
	Stats   MigrationStats `json:"stats"`
	Error   string         `json:"error,omitempty"`
}
