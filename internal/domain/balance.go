package domain

// Balance is the running per-user total, created lazily on the first
// money-affecting operation and only ever updated after that.
// AccountBalanceCents is the signed sum over the user's transactions;
// TotalDueCents is the sum of amount due over the user's unpaid due
// records.
type Balance struct {
	ID                  int32  `json:"id"`
	UserID              int32  `json:"user_id"`
	AccountBalanceCents int64  `json:"account_balance_cents"`
	TotalDueCents       int64  `json:"total_due_cents"`
	LastUpdated         string `json:"last_updated"`
}
