package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	clinicflow "github.com/clinicflow/backend"
)

type QuizHandler struct {
	service clinicflow.QuizService
	log     *zap.SugaredLogger
}

func NewQuizHandler(service clinicflow.QuizService, log *zap.SugaredLogger) *QuizHandler {
	return &QuizHandler{
		service: service,
		log:     log,
	}
}

func (qh QuizHandler) Submit(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		qh.log.Errorw("Submit", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("project ID is not in its proper form"))
		return
	}

	var answers clinicflow.QuizAnswers
	if err := decode(r, &answers); err != nil {
		qh.log.Errorw("Submit", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	if len(answers.ClinicName) <= 3 {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("clinic_name must be longer than 3 characters"))
		return
	}
	if len(answers.BrandVoices) > clinicflow.MaxBrandVoices {
		respondErr(ctx, rw, http.StatusBadRequest,
			fmt.Errorf("at most %d brand voices allowed", clinicflow.MaxBrandVoices))
		return
	}

	if err := qh.service.SubmitQuiz(ctx, projectID.String(), answers); err != nil {
		qh.log.Errorw("Submit", "error", err.Error())
		switch {
		case errors.Is(err, clinicflow.ErrProjectNotFound):
			respondErr(ctx, rw, http.StatusNotFound, err)
		default:
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return
	}

	respond(ctx, rw, http.StatusNoContent, nil)
}
