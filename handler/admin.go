package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	clinicflow "github.com/clinicflow/backend"
	"github.com/clinicflow/backend/money"
)

type AdminHandler struct {
	service clinicflow.AdminService
	log     *zap.SugaredLogger
}

func NewAdminHandler(service clinicflow.AdminService, log *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

func (ah AdminHandler) ListClients(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := ah.service.ListClients(ctx)
	if err != nil {
		ah.log.Errorw("ListClients", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusOK, clients)
}

// GetClient serves the client-details view. The clinic record is the
// primary payload: if it is missing the request fails, but each derived
// stat degrades to zero on its own query error.
func (ah AdminHandler) GetClient(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clinicID, err := uuid.Parse(chi.URLParam(r, "clinicID"))
	if err != nil {
		ah.log.Errorw("GetClient", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("clinic ID is not in its proper form"))
		return
	}

	details, err := ah.service.GetClient(ctx, clinicID.String())
	if err != nil {
		ah.log.Errorw("GetClient", "error", err.Error())
		switch {
		case errors.Is(err, clinicflow.ErrClinicNotFound):
			respondErr(ctx, rw, http.StatusNotFound, err)
		default:
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return
	}

	if details.Project != nil {
		month, total, err := ah.service.PostCounts(ctx, details.Project.ID)
		if err != nil {
			ah.log.Errorw("GetClient", "status", "post counts degraded", "clinic_id", clinicID, "error", err.Error())
		} else {
			details.Stats.PostsThisMonth = month
			details.Stats.PostsTotal = total
		}
	}

	paid, err := ah.service.PaymentTotal(ctx, clinicID.String())
	if err != nil {
		ah.log.Errorw("GetClient", "status", "payment total degraded", "clinic_id", clinicID, "error", err.Error())
	} else {
		details.Stats.PaidCents = paid
	}
	details.Stats.PaidFormatted = money.FormatBRL(details.Stats.PaidCents)

	logins, err := ah.service.LoginCount(ctx, details.Owner.ID)
	if err != nil {
		ah.log.Errorw("GetClient", "status", "login count degraded", "clinic_id", clinicID, "error", err.Error())
	} else {
		details.Stats.Logins = logins
	}

	respond(ctx, rw, http.StatusOK, details)
}
