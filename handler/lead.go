package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	clinicflow "github.com/clinicflow/backend"
)

// LeadNotifier pushes a captured lead onto the outbound message link.
// Publishing is best-effort; failures are logged, never surfaced.
type LeadNotifier interface {
	LeadCaptured(lead clinicflow.Lead) error
}

type LeadHandler struct {
	service  clinicflow.LeadService
	notifier LeadNotifier
	log      *zap.SugaredLogger
}

func NewLeadHandler(service clinicflow.LeadService, notifier LeadNotifier, log *zap.SugaredLogger) *LeadHandler {
	return &LeadHandler{
		service:  service,
		notifier: notifier,
		log:      log,
	}
}

type captureLeadRequest struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Source    string `json:"source"`
}

func (lh LeadHandler) Capture(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req captureLeadRequest
	if err := decode(r, &req); err != nil {
		lh.log.Errorw("Capture", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	if req.Name == "" {
		respondErr(ctx, rw, http.StatusBadRequest, clinicflow.ErrNameRequired)
		return
	}
	if _, err := uuid.Parse(req.ProjectID); err != nil {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("project_id is not in its proper form"))
		return
	}

	now := time.Now().UTC()
	lead := clinicflow.Lead{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Source:    req.Source,
		Status:    clinicflow.LeadStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := lh.service.Capture(ctx, lead); err != nil {
		lh.log.Errorw("Capture", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	if lh.notifier != nil {
		if err := lh.notifier.LeadCaptured(lead); err != nil {
			lh.log.Errorw("Capture", "status", "notify failed", "lead_id", lead.ID, "error", err.Error())
		}
	}

	respond(ctx, rw, http.StatusCreated, lead)
}

func (lh LeadHandler) ListByProject(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		lh.log.Errorw("ListByProject", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("project ID is not in its proper form"))
		return
	}

	leads, err := lh.service.ListByProject(ctx, projectID.String())
	if err != nil {
		lh.log.Errorw("ListByProject", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusOK, leads)
}

type updateStatusRequest struct {
	Status clinicflow.LeadStatus `json:"status"`
}

func (lh LeadHandler) UpdateStatus(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		lh.log.Errorw("UpdateStatus", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("ID is not in its proper form"))
		return
	}

	var req updateStatusRequest
	if err := decode(r, &req); err != nil {
		lh.log.Errorw("UpdateStatus", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	if !req.Status.Valid() {
		respondErr(ctx, rw, http.StatusBadRequest, clinicflow.ErrInvalidStatus)
		return
	}

	if err := lh.service.UpdateStatus(ctx, id.String(), req.Status); err != nil {
		lh.log.Errorw("UpdateStatus", "error", err.Error())
		switch {
		case errors.Is(err, clinicflow.ErrLeadNotFound):
			respondErr(ctx, rw, http.StatusNotFound, err)
		default:
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return
	}

	respond(ctx, rw, http.StatusNoContent, nil)
}
