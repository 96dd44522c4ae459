package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	clinicflow "github.com/clinicflow/backend"
	"github.com/clinicflow/backend/money"
)

// Plans maps the subscription plans offered on the pricing page to their
// price in centavos.
var Plans = map[string]money.Cents{
	"starter": 9700,
	"pro":     19700,
	"clinic":  39700,
}

type PaymentHandler struct {
	service clinicflow.PaymentService
	biller  clinicflow.Biller
	log     *zap.SugaredLogger
}

func NewPaymentHandler(service clinicflow.PaymentService, biller clinicflow.Biller, log *zap.SugaredLogger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		biller:  biller,
		log:     log,
	}
}

type createSessionRequest struct {
	ClinicID string `json:"clinic_id"`
	Plan     string `json:"plan"`
}

type createSessionResponse struct {
	PaymentID   string `json:"payment_id"`
	RedirectURL string `json:"redirect_url"`
}

// CreateSession opens a one-time PIX charge for a subscription plan and
// records the pending payment.
func (ph PaymentHandler) CreateSession(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createSessionRequest
	if err := decode(r, &req); err != nil {
		ph.log.Errorw("CreateSession", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	if _, err := uuid.Parse(req.ClinicID); err != nil {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("clinic_id is not in its proper form"))
		return
	}
	amount, ok := Plans[req.Plan]
	if !ok {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("unknown plan"))
		return
	}

	charge, err := ph.biller.CreateCharge(ctx, amount, "ClinicFlow "+req.Plan+" plan")
	if err != nil {
		ph.log.Errorw("CreateSession", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadGateway, errors.New("billing provider unavailable"))
		return
	}

	payment := clinicflow.Payment{
		ID:          uuid.NewString(),
		ClinicID:    req.ClinicID,
		Plan:        req.Plan,
		AmountCents: amount,
		Status:      clinicflow.PaymentPending,
		ChargeID:    charge.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := ph.service.Create(ctx, payment); err != nil {
		ph.log.Errorw("CreateSession", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusCreated, createSessionResponse{
		PaymentID:   payment.ID,
		RedirectURL: charge.RedirectURL,
	})
}
