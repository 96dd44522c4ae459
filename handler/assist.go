package handler

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// TextImprover rewrites a piece of marketing copy for a given quiz field.
type TextImprover interface {
	Improve(ctx context.Context, text, field string) (string, error)
}

type AssistHandler struct {
	improver TextImprover
	log      *zap.SugaredLogger
}

func NewAssistHandler(improver TextImprover, log *zap.SugaredLogger) *AssistHandler {
	return &AssistHandler{
		improver: improver,
		log:      log,
	}
}

type improveRequest struct {
	Text  string `json:"text"`
	Field string `json:"field"`
}

type improveResponse struct {
	Text string `json:"text"`
}

func (ah AssistHandler) Improve(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req improveRequest
	if err := decode(r, &req); err != nil {
		ah.log.Errorw("Improve", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	improved, err := ah.improver.Improve(ctx, req.Text, req.Field)
	if err != nil {
		ah.log.Errorw("Improve", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadGateway, errors.New("text service unavailable"))
		return
	}

	respond(ctx, rw, http.StatusOK, improveResponse{Text: improved})
}
