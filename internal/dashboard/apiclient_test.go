package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arlearn/admin-backend/internal/domain"
)

func TestAPIClient_Login(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		if req["name"] != "admin" || req["password"] != "secret" {
			t.Errorf("unexpected body: %v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"id": 1, "name": "admin", "loginTime": time.Now().UTC().Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, srv.Client(), NewMemoryStore())

	rec, err := client.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != 1 || rec.Name != "admin" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestAPIClient_Login_Unauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"}) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, srv.Client(), NewMemoryStore())

	_, err := client.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAPIClient_ForwardsSessionHeader(t *testing.T) {
	t.Parallel()

	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Session")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]")) //nolint:errcheck
	}))
	defer srv.Close()

	store := NewMemoryStore()
	store.Save(domain.SessionRecord{ID: 9, Name: "admin", LoginTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)})

	client := NewAPIClient(srv.URL, srv.Client(), store)

	if _, err := client.ListModels(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rec domain.SessionRecord
	if err := json.Unmarshal([]byte(gotHeader), &rec); err != nil {
		t.Fatalf("X-Session header not valid JSON: %q", gotHeader)
	}
	if rec.ID != 9 || rec.Name != "admin" {
		t.Errorf("unexpected session header record: %+v", rec)
	}
}

func TestAPIClient_CreateModel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/catalog/models" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"id": 12, "name": "Apple", "description": "A fruit",
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, srv.Client(), NewMemoryStore())

	model, err := client.CreateModel(context.Background(), ModelFields{Name: "Apple", Description: "A fruit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.ID != 12 || model.Name != "Apple" {
		t.Errorf("unexpected model: %+v", model)
	}
}

func TestAPIClient_UpdateQuestion_PathAndBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/catalog/quiz/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		if req["answer"] != "C" {
			t.Errorf("expected answer C, got %q", req["answer"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"id": 7, "question": req["question"],
			"option_a": req["option_a"], "option_b": req["option_b"],
			"option_c": req["option_c"], "option_d": req["option_d"],
			"answer": "C",
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, srv.Client(), NewMemoryStore())

	q, err := client.UpdateQuestion(context.Background(), 7, QuizFields{
		Question: "q", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Answer: "C",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != domain.AnswerC {
		t.Errorf("expected answer C, got %q", q.Answer)
	}
}

func TestAPIClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"not found", http.StatusNotFound, domain.ErrNotFound},
		{"validation", http.StatusBadRequest, domain.ErrValidation},
		{"conflict", http.StatusConflict, domain.ErrAlreadyExists},
		{"server error", http.StatusInternalServerError, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]string{"error": "something"}) //nolint:errcheck
			}))
			defer srv.Close()

			client := NewAPIClient(srv.URL, srv.Client(), NewMemoryStore())

			err := client.DeleteModel(context.Background(), 1)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}

func TestAPIClient_ValidationMessageSurfaced(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
			"error": "validation: answer - must be one of A, B, C, D",
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, srv.Client(), NewMemoryStore())

	_, err := client.CreateQuestion(context.Background(), QuizFields{Answer: "X"})
	if err == nil {
		t.Fatal("expected error")
	}
	// The server's message rides along for the verbose save-error path.
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if want := "must be one of A, B, C, D"; !strings.Contains(err.Error(), want) {
		t.Errorf("expected %q in error, got %q", want, err.Error())
	}
}
