package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workasana/internal/http/middleware"
	"workasana/internal/service"
	"workasana/internal/ws"

	"github.com/gin-gonic/gin"
)

// newTestRouter wires the handlers without a database; only routes whose
// validation rejects the request before any store access are exercised.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil, ws.NewHub())

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", middleware.JWT(), h.Me)
	r.POST("/tasks", h.CreateTask)
	r.GET("/tasks", h.ListTasks)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignup_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{
		`{}`,
		`{"username":"ann"}`,
		`{"username":"ann","email":"a@x.com"}`,
		`{"email":"a@x.com","password":"pw"}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/auth/signup", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "All fields are required") {
			t.Fatalf("body %s: unexpected response %s", body, w.Body.String())
		}
	}
}

func TestLogin_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", `{"email":"a@x.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMe_RequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service.InitJWT()
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestCreateTask_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{
		`{}`,
		`{"name":"t"}`,
		`{"name":"t","project":1,"team":1,"owners":[],"timeToComplete":2}`,
		`{"name":"t","project":1,"team":1,"owners":[1]}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/tasks", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestCreateTask_RejectsUnknownStatus(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/tasks",
		`{"name":"t","project":1,"team":1,"owners":[1],"timeToComplete":2,"status":"Done"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListTasks_RejectsNonNumericReferenceFilters(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/tasks?project=web", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
