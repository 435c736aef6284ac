package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"advocates/internal/domain"
	"advocates/internal/query"
	"advocates/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubStore struct {
	total  int
	data   []domain.Advocate
	byID   map[int64]domain.Advocate
	byCity map[string][]domain.Advocate
	err    error
	calls  int
}

func (s *stubStore) Count(ctx context.Context, preds query.Predicates) (int, error) {
	s.calls++
	return s.total, s.err
}

func (s *stubStore) Find(ctx context.Context, preds query.Predicates, sort domain.SortSpec, limit, offset int) ([]domain.Advocate, error) {
	s.calls++
	return s.data, s.err
}

func (s *stubStore) GetByID(ctx context.Context, id int64) (domain.Advocate, error) {
	s.calls++
	if s.err != nil {
		return domain.Advocate{}, s.err
	}
	a, ok := s.byID[id]
	if !ok {
		return domain.Advocate{}, sql.ErrNoRows
	}
	return a, nil
}

func (s *stubStore) ListByCity(ctx context.Context, city string) ([]domain.Advocate, error) {
	s.calls++
	return s.byCity[city], s.err
}

func (s *stubStore) Stats(ctx context.Context) (domain.DirectoryStats, error) {
	s.calls++
	return domain.DirectoryStats{Total: s.total}, s.err
}

func newTestRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.AdvocateService{Store: store, Log: zap.NewNop()}
	h := AdvocateHandler{Service: svc, Docs: services.ProfileDocService{Advocates: svc}}

	r := gin.New()
	adv := r.Group("/api/advocates")
	adv.GET("", h.List)
	adv.GET("/stats", h.Stats)
	adv.GET("/by-city", h.ListByCity)
	adv.GET("/:id", h.GetByID)
	adv.GET("/:id/profile.pdf", h.ProfilePDF)
	return r
}

func doGet(t *testing.T, r *gin.Engine, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (body %q)", err, w.Body.String())
	}
	return w, body
}

func TestListSuccessEnvelope(t *testing.T) {
	store := &stubStore{total: 1, data: []domain.Advocate{{ID: 1, FirstName: "John", LastName: "Doe", City: "New York"}}}
	r := newTestRouter(store)

	w, body := doGet(t, r, "/api/advocates?search=doctor&city=New+York&sortBy=lastName&sortOrder=asc&page=1&limit=20")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	pagination, ok := body["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("pagination block missing: %v", body)
	}
	if pagination["total"].(float64) != 1 || pagination["totalPages"].(float64) != 1 {
		t.Fatalf("pagination wrong: %v", pagination)
	}
	if pagination["hasNext"].(bool) || pagination["hasPrev"].(bool) {
		t.Fatalf("page flags wrong: %v", pagination)
	}
	if data := body["data"].([]any); len(data) != 1 {
		t.Fatalf("data wrong: %v", body["data"])
	}
}

func TestListBoundaryRejections(t *testing.T) {
	cases := map[string]string{
		"/api/advocates?limit=0":   "limit",
		"/api/advocates?limit=101": "limit",
		"/api/advocates?page=0":    "page",
		"/api/advocates?page=-1":   "page",
	}
	for target, parameter := range cases {
		store := &stubStore{}
		r := newTestRouter(store)

		w, body := doGet(t, r, target)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", target, w.Code)
		}
		if body["error"] != "InvalidParameterError" {
			t.Fatalf("%s: error = %v", target, body["error"])
		}
		if body["parameter"] != parameter {
			t.Fatalf("%s: parameter = %v, want %s", target, body["parameter"], parameter)
		}
		if data, ok := body["data"].([]any); !ok || len(data) != 0 {
			t.Fatalf("%s: data must be an empty array, got %v", target, body["data"])
		}
		if store.calls != 0 {
			t.Fatalf("%s: store must not be reached on validation failure", target)
		}
	}
}

func TestGetByIDNotFoundEnvelope(t *testing.T) {
	r := newTestRouter(&stubStore{byID: map[int64]domain.Advocate{}})

	w, body := doGet(t, r, "/api/advocates/999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if body["error"] != "ResourceNotFoundError" {
		t.Fatalf("error = %v", body["error"])
	}
	msg, _ := body["message"].(string)
	if msg == "" || !strings.Contains(msg, "999") {
		t.Fatalf("message should name the id: %q", msg)
	}
	if body["data"] != nil {
		t.Fatalf("single-record failures carry null data, got %v", body["data"])
	}
}

func TestGetByIDInvalidFormat(t *testing.T) {
	r := newTestRouter(&stubStore{})

	w, body := doGet(t, r, "/api/advocates/abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if body["parameter"] != "id" {
		t.Fatalf("parameter = %v", body["parameter"])
	}
}

func TestByCityRejectsBeforeStore(t *testing.T) {
	store := &stubStore{}
	r := newTestRouter(store)

	w, body := doGet(t, r, "/api/advocates/by-city?city=New+York%21")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if body["error"] != "InvalidParameterError" || body["parameter"] != "city" {
		t.Fatalf("unexpected body: %v", body)
	}
	if store.calls != 0 {
		t.Fatalf("store must not be reached for an invalid city")
	}
}

func TestByCityEmptyResultIsOK(t *testing.T) {
	r := newTestRouter(&stubStore{byCity: map[string][]domain.Advocate{}})

	w, body := doGet(t, r, "/api/advocates/by-city?city=Nowhere")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if data, ok := body["data"].([]any); !ok || len(data) != 0 {
		t.Fatalf("expected empty data array, got %v", body["data"])
	}
}

func TestStoreFailureEnvelope(t *testing.T) {
	r := newTestRouter(&stubStore{err: errDial})

	w, body := doGet(t, r, "/api/advocates")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if body["error"] != "DatabaseError" || body["code"] != "DATABASE_ERROR" {
		t.Fatalf("unexpected body: %v", body)
	}
	if strings.Contains(body["message"].(string), "dial tcp") {
		t.Fatalf("driver text leaked: %v", body["message"])
	}
}

func TestProfilePDFContentType(t *testing.T) {
	r := newTestRouter(&stubStore{byID: map[int64]domain.Advocate{
		1: {ID: 1, FirstName: "John", LastName: "Doe"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/advocates/1/profile.pdf", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
}

var errDial = &dialError{}

type dialError struct{}

func (*dialError) Error() string { return "dial tcp 127.0.0.1:3306: connection refused" }
