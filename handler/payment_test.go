package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	clinicflow "github.com/clinicflow/backend"
	"github.com/clinicflow/backend/handler"
	"github.com/clinicflow/backend/money"
)

type stubPaymentService struct {
	created []clinicflow.Payment
	err     error
}

func (s *stubPaymentService) Create(ctx context.Context, p clinicflow.Payment) error {
	s.created = append(s.created, p)
	return s.err
}

type stubBiller struct {
	charge clinicflow.PixCharge
	err    error
	calls  int
}

func (s *stubBiller) CreateCharge(ctx context.Context, amount money.Cents, description string) (clinicflow.PixCharge, error) {
	s.calls++
	return s.charge, s.err
}

func TestCreateSession(t *testing.T) {
	svc := &stubPaymentService{}
	biller := &stubBiller{charge: clinicflow.PixCharge{ID: "ch_1", RedirectURL: "https://pay.example/ch_1"}}
	ph := handler.NewPaymentHandler(svc, biller, zap.NewNop().Sugar())

	body, _ := json.Marshal(map[string]string{"clinic_id": uuid.NewString(), "plan": "starter"})
	w := httptest.NewRecorder()
	ph.CreateSession(w, httptest.NewRequest("POST", "/payments/session", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)

	var res map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "https://pay.example/ch_1", res["redirect_url"])

	require.Len(t, svc.created, 1)
	assert.Equal(t, clinicflow.PaymentPending, svc.created[0].Status)
	assert.EqualValues(t, 9700, svc.created[0].AmountCents)
	assert.Equal(t, "ch_1", svc.created[0].ChargeID)
}

func TestCreateSessionUnknownPlan(t *testing.T) {
	biller := &stubBiller{}
	ph := handler.NewPaymentHandler(&stubPaymentService{}, biller, zap.NewNop().Sugar())

	body, _ := json.Marshal(map[string]string{"clinic_id": uuid.NewString(), "plan": "platinum"})
	w := httptest.NewRecorder()
	ph.CreateSession(w, httptest.NewRequest("POST", "/payments/session", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, biller.calls)
}

func TestCreateSessionBillerDown(t *testing.T) {
	svc := &stubPaymentService{}
	biller := &stubBiller{err: assert.AnError}
	ph := handler.NewPaymentHandler(svc, biller, zap.NewNop().Sugar())

	body, _ := json.Marshal(map[string]string{"clinic_id": uuid.NewString(), "plan": "pro"})
	w := httptest.NewRecorder()
	ph.CreateSession(w, httptest.NewRequest("POST", "/payments/session", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, svc.created, "no payment row without a charge")
}
