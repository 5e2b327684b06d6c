package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-record-book/internal/agent/api"
)

func recordsServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, h := range handlers {
		mux.HandleFunc(pattern, h)
	}
	return httptest.NewTLSServer(mux)
}

func TestListRecords_ParsesList(t *testing.T) {
	srv := recordsServer(t, map[string]http.HandlerFunc{
		"/record": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Fatalf("expected GET, got %s", r.Method)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(api.RecordListResponse{
				Status: 200,
				Records: []api.Record{
					{ID: 1, Name: "Ivan Petrov", Course: "Go 101", Email: "ivan@example.com", Phone: "9001234567"},
					{ID: 2, Name: "Anna Sidorova", Course: "Go 102", Email: "anna@example.com", Phone: "9007654321"},
				},
			})
		},
	})
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.ListRecords()
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(resp.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp.Records))
	}
	if resp.Records[0].Name != "Ivan Petrov" {
		t.Fatalf("unexpected record: %+v", resp.Records[0])
	}
}

func TestListRecords_Empty_Returns404Error(t *testing.T) {
	srv := recordsServer(t, map[string]http.HandlerFunc{
		"/record": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"status": 404, "message": "No Records Found"})
		},
	})
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.ListRecords()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "No Records Found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateRecord_SendsPayload(t *testing.T) {
	srv := recordsServer(t, map[string]http.HandlerFunc{
		"/record": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			var req api.RecordPayload
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.Phone != "9001234567" {
				t.Fatalf("unexpected phone: %q", req.Phone)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(api.StatusMessageResponse{Status: 200, Message: "Created A Record Successfully"})
		},
	})
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.CreateRecord(api.RecordPayload{
		Name:   "Ivan Petrov",
		Course: "Go 101",
		Email:  "ivan@example.com",
		Phone:  "9001234567",
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if resp.Message != "Created A Record Successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestGetRecord_ParsesRecordKey(t *testing.T) {
	srv := recordsServer(t, map[string]http.HandlerFunc{
		"/record/7": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(api.RecordResponse{
				Status: 200,
				Record: api.Record{ID: 7, Name: "Ivan Petrov"},
			})
		},
	})
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.GetRecord(7)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if resp.Record.ID != 7 {
		t.Fatalf("unexpected record: %+v", resp.Record)
	}
}

func TestEditRecord_ParsesRecordsKey(t *testing.T) {
	srv := recordsServer(t, map[string]http.HandlerFunc{
		"/record/7/edit": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Fatalf("expected GET, got %s", r.Method)
			}
			w.Header().Set("Content-Type", "application/json")
			// единственная запись лежит под ключом records
			json.NewEncoder(w).Encode(api.RecordEditResponse{
				Status:  200,
				Records: api.Record{ID: 7, Name: "Ivan Petrov", Phone: "9001234567"},
			})
		},
	})
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.EditRecord(7)
	if err != nil {
		t.Fatalf("edit returned error: %v", err)
	}
	if resp.Records.ID != 7 || resp.Records.Phone != "9001234567" {
		t.Fatalf("unexpected record: %+v", resp.Records)
	}
}

func TestUpdateRecord_PutsToEditPath(t *testing.T) {
	srv := recordsServer(t, map[string]http.HandlerFunc{
		"/record/7/edit": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Fatalf("expected PUT, got %s", r.Method)
			}
			var req api.RecordPayload
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.Course != "Go 102" {
				t.Fatalf("unexpected course: %q", req.Course)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(api.StatusMessageResponse{Status: 200, Message: "Record Updated Successfully"})
		},
	})
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.UpdateRecord(7, api.RecordPayload{
		Name:   "Ivan Petrov",
		Course: "Go 102",
		Email:  "ivan@example.com",
		Phone:  "9001234567",
	})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if resp.Message != "Record Updated Successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestDeleteRecord_NotFound_ReturnsError(t *testing.T) {
	srv := recordsServer(t, map[string]http.HandlerFunc{
		"/record/99": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Fatalf("expected DELETE, got %s", r.Method)
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"status": 404, "message": "Record Not Found!"})
		},
	})
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.DeleteRecord(99)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Record Not Found!") {
		t.Fatalf("unexpected error: %v", err)
	}
}
