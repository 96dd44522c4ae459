package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	clinicflow "github.com/clinicflow/backend"
	"github.com/clinicflow/backend/handler"
)

// memLeadService keeps leads in memory so list-after-update behaviour can
// be exercised through the real handlers.
type memLeadService struct {
	mu    sync.Mutex
	leads map[string]clinicflow.Lead
	err   error
}

func newMemLeadService() *memLeadService {
	return &memLeadService{leads: map[string]clinicflow.Lead{}}
}

func (m *memLeadService) Capture(ctx context.Context, lead clinicflow.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.leads[lead.ID] = lead
	return nil
}

func (m *memLeadService) ListByProject(ctx context.Context, projectID string) ([]clinicflow.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []clinicflow.Lead{}
	for _, l := range m.leads {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memLeadService) UpdateStatus(ctx context.Context, id string, status clinicflow.LeadStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.leads[id]
	if !ok {
		return clinicflow.ErrLeadNotFound
	}
	l.Status = status
	m.leads[id] = l
	return nil
}

type stubNotifier struct {
	events []clinicflow.Lead
	err    error
}

func (s *stubNotifier) LeadCaptured(lead clinicflow.Lead) error {
	s.events = append(s.events, lead)
	return s.err
}

func newLeadRouter(svc clinicflow.LeadService, n handler.LeadNotifier) chi.Router {
	lh := handler.NewLeadHandler(svc, n, zap.NewNop().Sugar())
	r := chi.NewRouter()
	r.Post("/leads", lh.Capture)
	r.Get("/projects/{projectID}/leads", lh.ListByProject)
	r.Patch("/leads/{id}/status", lh.UpdateStatus)
	return r
}

func TestCaptureRequiresName(t *testing.T) {
	svc := newMemLeadService()
	r := newLeadRouter(svc, nil)

	body, _ := json.Marshal(map[string]string{"project_id": uuid.NewString()})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/leads", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.leads)
}

func TestCaptureDefaultsStatusAndNotifies(t *testing.T) {
	svc := newMemLeadService()
	n := &stubNotifier{}
	r := newLeadRouter(svc, n)

	projectID := uuid.NewString()
	body, _ := json.Marshal(map[string]string{
		"project_id": projectID,
		"name":       "Maria Souza",
		"phone":      "+55 41 99999-0000",
		"source":     "instagram",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/leads", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)

	var created clinicflow.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, clinicflow.LeadStatusNew, created.Status)
	assert.NotEmpty(t, created.ID)

	require.Len(t, n.events, 1)
	assert.Equal(t, created.ID, n.events[0].ID)
}

func TestCaptureSucceedsWhenNotifierFails(t *testing.T) {
	svc := newMemLeadService()
	n := &stubNotifier{err: assert.AnError}
	r := newLeadRouter(svc, n)

	body, _ := json.Marshal(map[string]string{
		"project_id": uuid.NewString(),
		"name":       "Maria Souza",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/leads", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, svc.leads, 1)
}

func TestUpdateStatusReflectedInList(t *testing.T) {
	svc := newMemLeadService()
	r := newLeadRouter(svc, nil)
	projectID := uuid.NewString()

	// Capture one lead through the handler.
	body, _ := json.Marshal(map[string]string{"project_id": projectID, "name": "Ana"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/leads", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	var created clinicflow.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	statuses := []clinicflow.LeadStatus{
		clinicflow.LeadStatusNew,
		clinicflow.LeadStatusContacted,
		clinicflow.LeadStatusScheduled,
		clinicflow.LeadStatusWon,
		clinicflow.LeadStatusLost,
	}

	for _, status := range statuses {
		body, _ := json.Marshal(map[string]string{"status": string(status)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("PATCH", "/leads/"+created.ID+"/status", bytes.NewReader(body)))
		require.Equal(t, http.StatusNoContent, w.Code, "status %s", status)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/projects/"+projectID+"/leads", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var leads []clinicflow.Lead
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
		require.Len(t, leads, 1)
		assert.Equal(t, status, leads[0].Status, "status %s", status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := newMemLeadService()
	svc.leads["x"] = clinicflow.Lead{ID: "x"}
	r := newLeadRouter(svc, nil)

	body, _ := json.Marshal(map[string]string{"status": "archived"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PATCH", "/leads/"+uuid.NewString()+"/status", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusUnknownLead(t *testing.T) {
	r := newLeadRouter(newMemLeadService(), nil)

	body, _ := json.Marshal(map[string]string{"status": "won"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PATCH", "/leads/"+uuid.NewString()+"/status", bytes.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
