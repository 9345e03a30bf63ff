package domain

type PaymentType string

const (
	PaymentTypeCash   PaymentType = "cash"
	PaymentTypeCard   PaymentType = "card"
	PaymentTypeOnline PaymentType = "online"
)

type ReceiptItem struct {
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

type PaymentDetails struct {
	CardNumber       string `json:"card_number,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	PhoneCountryCode string `json:"phone_country_code,omitempty"`
}

// StoreInfo is a snapshot of the shop profile at the time the receipt
// was issued, so later profile edits do not rewrite old receipts.
type StoreInfo struct {
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
	Contact     string `json:"contact,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

type Receipt struct {
	ID                  int32          `json:"id"`
	UserID              int32          `json:"user_id"`
	ReceiptNumber       string         `json:"receipt_number"`
	Date                string         `json:"date"`
	CustomerName        string         `json:"customer_name"`
	CustomerContact     string         `json:"customer_contact,omitempty"`
	CustomerCountryCode string         `json:"customer_country_code,omitempty"`
	PaymentType         PaymentType    `json:"payment_type"`
	Notes               string         `json:"notes,omitempty"`
	Items               []ReceiptItem  `json:"items"`
	TotalCents          int64          `json:"total_cents"`
	PaymentDetails      PaymentDetails `json:"payment_details"`
	StoreInfo           StoreInfo      `json:"store_info"`
	CreatedOn           string         `json:"created_on"`
}
