package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/service"
)

func TestDueRecordHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ledger := new(MockLedgerService)
		h := NewDueRecordHandler(ledger)

		ledger.On("CreateDueRecord", mock.Anything, int32(1), mock.MatchedBy(func(rec *domain.DueRecord) bool {
			return rec.CustomerName == "Asha" && rec.AmountDueCents == 4000
		})).Return(&domain.DueRecord{ID: 11, UserID: 1, CustomerName: "Asha", AmountDueCents: 4000}, nil).Once()

		req := authedRequest("POST", "/api/due-records", `{"customer_name":"Asha","product_ordered":"Flour","amount_due_cents":4000}`)
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		ledger.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		ledger := new(MockLedgerService)
		h := NewDueRecordHandler(ledger)

		req := authedRequest("POST", "/api/due-records", `{"customer_name":"Asha"}`)
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		ledger.AssertNotCalled(t, "CreateDueRecord")
	})
}

func TestDueRecordHandler_MarkPaid(t *testing.T) {
	markPaidRequest := func(id string) *http.Request {
		req := authedRequest("PUT", "/api/due-records/"+id+"/mark-paid", "")
		return mux.SetURLVars(req, map[string]string{"id": id})
	}

	t.Run("Success", func(t *testing.T) {
		ledger := new(MockLedgerService)
		h := NewDueRecordHandler(ledger)

		paidAt := "2026-03-05T10:00:00Z"
		rec := &domain.DueRecord{ID: 11, UserID: 1, CustomerName: "Asha", AmountDueCents: 4000, IsPaid: true, PaidAt: &paidAt}
		tx := &domain.Transaction{ID: 6, UserID: 1, AmountCents: 4000, Type: domain.TransactionTypeCredit}
		bal := &domain.Balance{UserID: 1, AccountBalanceCents: 14000, TotalDueCents: 0}
		ledger.On("SettleDueRecord", mock.Anything, int32(1), int32(11)).Return(rec, tx, bal, nil).Once()

		rr := httptest.NewRecorder()
		h.MarkPaid(rr, markPaidRequest("11"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"account_balance_cents":14000`)
		assert.Contains(t, rr.Body.String(), `"total_due_cents":0`)
	})

	t.Run("NotFound", func(t *testing.T) {
		ledger := new(MockLedgerService)
		h := NewDueRecordHandler(ledger)

		ledger.On("SettleDueRecord", mock.Anything, int32(1), int32(99)).
			Return(nil, nil, nil, service.ErrDueRecordNotFound).Once()

		rr := httptest.NewRecorder()
		h.MarkPaid(rr, markPaidRequest("99"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		ledger := new(MockLedgerService)
		h := NewDueRecordHandler(ledger)

		ledger.On("SettleDueRecord", mock.Anything, int32(1), int32(11)).
			Return(nil, nil, nil, service.ErrDueAlreadyPaid).Once()

		rr := httptest.NewRecorder()
		h.MarkPaid(rr, markPaidRequest("11"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		ledger := new(MockLedgerService)
		h := NewDueRecordHandler(ledger)

		rr := httptest.NewRecorder()
		h.MarkPaid(rr, markPaidRequest("abc"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		ledger.AssertNotCalled(t, "SettleDueRecord")
	})
}
