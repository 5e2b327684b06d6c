package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-record-book/internal/agent/api"
	"github.com/IvanChernomyrdin/go-record-book/internal/agent/cli"
)

func TestNewRegisterCmd_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		var req api.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Ivan" || req.Email != "ivan@example.com" || req.Password != "strongpassword" {
			t.Fatalf("unexpected request: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.RegisterResponse{
			Message: "User Successfully Registered",
			User:    api.User{ID: "uuid-1", Name: "Ivan", Email: "ivan@example.com"},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	stubPassword(t, "strongpassword")
	app := newApp(t, srv.URL, nil)

	out, err := execute(cli.NewRegisterCmd(app), "--name", "Ivan", "--email", "ivan@example.com")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "User Successfully Registered (id=uuid-1)") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNewRegisterCmd_PasswordFromStdin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req api.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Password != "from-stdin" {
			t.Fatalf("unexpected password: %q", req.Password)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.RegisterResponse{Message: "User Successfully Registered"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := newApp(t, srv.URL, nil)

	cmd := cli.NewRegisterCmd(app)
	cmd.SetIn(strings.NewReader("from-stdin\n"))

	_, err := execute(cmd, "--name", "Ivan", "--email", "ivan@example.com", "--password-stdin")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestNewRegisterCmd_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":400,"errors":{"email":["The email has already been taken."]}}`))
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	stubPassword(t, "strongpassword")
	app := newApp(t, srv.URL, nil)

	_, err := execute(cli.NewRegisterCmd(app), "--name", "Ivan", "--email", "taken@example.com")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "The email has already been taken.") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewRegisterCmd_MissingRequiredFlags(t *testing.T) {
	app := newApp(t, "https://127.0.0.1:8080", nil)

	_, err := execute(cli.NewRegisterCmd(app), "--name", "Ivan")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "email") {
		t.Fatalf("unexpected error: %v", err)
	}
}
