package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	clinicflow "github.com/clinicflow/backend"
	"github.com/clinicflow/backend/handler"
)

type stubQuizService struct {
	calls   int
	gotID   string
	gotAnsw clinicflow.QuizAnswers
	err     error
}

func (s *stubQuizService) SubmitQuiz(ctx context.Context, projectID string, answers clinicflow.QuizAnswers) error {
	s.calls++
	s.gotID = projectID
	s.gotAnsw = answers
	return s.err
}

func newQuizRouter(svc clinicflow.QuizService) chi.Router {
	qh := handler.NewQuizHandler(svc, zap.NewNop().Sugar())
	r := chi.NewRouter()
	r.Post("/projects/{projectID}/quiz", qh.Submit)
	return r
}

func TestQuizSubmit(t *testing.T) {
	svc := &stubQuizService{}
	r := newQuizRouter(svc)
	projectID := uuid.NewString()

	answers := clinicflow.QuizAnswers{
		ClinicName:   "Clinica Sorriso",
		City:         "Curitiba",
		PrimaryColor: "#0ea5e9",
		FontStyle:    clinicflow.FontModern,
		BrandVoices:  []clinicflow.BrandVoice{clinicflow.VoiceWelcoming},
		Slogan:       "Seu sorriso em boas maos",
		VisualStyle:  clinicflow.VisualClinical,
	}
	body, _ := json.Marshal(answers)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/projects/"+projectID+"/quiz", bytes.NewReader(body)))

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, projectID, svc.gotID)
	assert.Equal(t, answers, svc.gotAnsw)
}

func TestQuizSubmitShortClinicName(t *testing.T) {
	svc := &stubQuizService{}
	r := newQuizRouter(svc)

	body, _ := json.Marshal(clinicflow.QuizAnswers{ClinicName: "abc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/projects/"+uuid.NewString()+"/quiz", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestQuizSubmitTooManyVoices(t *testing.T) {
	svc := &stubQuizService{}
	r := newQuizRouter(svc)

	body, _ := json.Marshal(clinicflow.QuizAnswers{
		ClinicName: "Clinica Sorriso",
		BrandVoices: []clinicflow.BrandVoice{
			clinicflow.VoiceWelcoming,
			clinicflow.VoiceTechnical,
			clinicflow.VoicePremium,
			clinicflow.VoiceYouthful,
		},
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/projects/"+uuid.NewString()+"/quiz", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestQuizSubmitUnknownProject(t *testing.T) {
	svc := &stubQuizService{err: clinicflow.ErrProjectNotFound}
	r := newQuizRouter(svc)

	body, _ := json.Marshal(clinicflow.QuizAnswers{ClinicName: "Clinica Sorriso"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/projects/"+uuid.NewString()+"/quiz", bytes.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
