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

type PostHandler struct {
	service clinicflow.PostService
	log     *zap.SugaredLogger
}

func NewPostHandler(service clinicflow.PostService, log *zap.SugaredLogger) *PostHandler {
	return &PostHandler{
		service: service,
		log:     log,
	}
}

type createPostRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

func (ph PostHandler) Create(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		ph.log.Errorw("Create", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("project ID is not in its proper form"))
		return
	}

	var req createPostRequest
	if err := decode(r, &req); err != nil {
		ph.log.Errorw("Create", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}
	if req.Title == "" {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("title is required"))
		return
	}

	post := clinicflow.Post{
		ID:        uuid.NewString(),
		ProjectID: projectID.String(),
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
		CreatedAt: time.Now().UTC(),
	}

	if err := ph.service.Create(ctx, post); err != nil {
		ph.log.Errorw("Create", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusCreated, post)
}

func (ph PostHandler) ListByProject(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		ph.log.Errorw("ListByProject", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("project ID is not in its proper form"))
		return
	}

	posts, err := ph.service.ListByProject(ctx, projectID.String())
	if err != nil {
		ph.log.Errorw("ListByProject", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusOK, posts)
}
