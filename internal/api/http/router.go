package http

import (
	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Receipt     *ReceiptHandler
	Transaction *TransactionHandler
	DueRecord   *DueRecordHandler
	Balance     *BalanceHandler
	Migration   *MigrationHandler
	Health      *HealthHandler
}

// NewRouter wires the full route table. Everything under /api except
// auth and the legacy import requires a bearer token.
func NewRouter(h Handlers, authMW *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health.Check).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", h.Auth.Register).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods("POST")
	api.HandleFunc("/migrate", h.Migration.Migrate).Methods("POST")

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(authMW.RequireAuth)
	protected.HandleFunc("/users/profile", h.User.GetProfile).Methods("GET")
	protected.HandleFunc("/users/profile", h.User.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/users/password", h.User.ChangePassword).Methods("PUT")
	protected.HandleFunc("/receipts", h.Receipt.List).Methods("GET")
	protected.HandleFunc("/receipts", h.Receipt.Create).Methods("POST")
	protected.HandleFunc("/transactions", h.Transaction.List).Methods("GET")
	protected.HandleFunc("/transactions", h.Transaction.Create).Methods("POST")
	protected.HandleFunc("/due-records", h.DueRecord.List).Methods("GET")
	protected.HandleFunc("/due-records", h.DueRecord.Create).Methods("POST")
	protected.HandleFunc("/due-records/{id}/mark-paid", h.DueRecord.MarkPaid).Methods("PUT")
	protected.HandleFunc("/balance", h.Balance.Get).Methods("GET")

	return r
}
