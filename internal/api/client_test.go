package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cli, err := New(srv.URL, "test-token")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return cli
}

func TestWorkloadDetails(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/projects/42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		fmt.Fprint(w, `{
			"project": {
				"id": 42, "name": "blog", "owner": "alice",
				"source": "github", "source_url": "https://github.com/alice/blog",
				"source_branch": "main", "deployed_image_tag": "ghcr.io/alice/blog:abc123",
				"env_vars": {"PORT": "8080"},
				"created_at": "2024-02-10T09:00:00Z"
			},
			"participants": ["bob"],
			"database": {"id": 7, "host": "db.internal", "port": 3306,
				"database_name": "alice_db", "username": "alice", "password": "s3cret",
				"project_id": 42}
		}`)
	})

	details, err := cli.WorkloadDetails(context.Background(), 42)
	if err != nil {
		t.Fatalf("WorkloadDetails: %v", err)
	}
	if details.Workload.Name != "blog" || details.Workload.Owner != "alice" {
		t.Errorf("unexpected workload: %+v", details.Workload)
	}
	if len(details.Participants) != 1 || details.Participants[0] != "bob" {
		t.Errorf("unexpected participants: %v", details.Participants)
	}
	if !details.Database.Linked() || *details.Database.WorkloadID != 42 {
		t.Errorf("unexpected database: %+v", details.Database)
	}
	if got := details.Workload.CreatedDate(); got != "2024-02-10" {
		t.Errorf("CreatedDate = %q", got)
	}
}

func TestStructuredError(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error_code": "IMAGE_SCAN_FAILED", "details": "CVE-2024-0001 critical"}`)
	})

	err := cli.UpdateImage(context.Background(), 42, "ghcr.io/x/y:latest")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Code != "IMAGE_SCAN_FAILED" || apiErr.Details != "CVE-2024-0001 critical" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestErrorFallbackCodes(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusUnauthorized, "UNAUTHORIZED"},
		{http.StatusForbidden, "UNAUTHORIZED"},
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusInternalServerError, "HTTP_ERROR_500"},
		{http.StatusBadGateway, "DEFAULT"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, "plain text failure")
			})
			err := cli.Start(context.Background(), 1)
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if apiErr.Code != tt.want {
				t.Errorf("Code = %q, want %q", apiErr.Code, tt.want)
			}
		})
	}
}

func TestLogsRawText(t *testing.T) {
	raw := "2024-03-01T10:15:00Z started\nplain line\n"
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/5/logs" {
			t.Errorf("path = %s", r.URL.Path)
		}
		fmt.Fprint(w, raw)
	})

	got, err := cli.Logs(context.Background(), 5)
	if err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if got != raw {
		t.Errorf("Logs = %q, want %q", got, raw)
	}
}

func TestUpdateEnvPayload(t *testing.T) {
	var received map[string]map[string]string
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
	})

	vars := map[string]string{"A": "1", "B": "2"}
	if err := cli.UpdateEnv(context.Background(), 9, vars); err != nil {
		t.Fatalf("UpdateEnv: %v", err)
	}
	if received["env_vars"]["A"] != "1" || received["env_vars"]["B"] != "2" {
		t.Errorf("unexpected payload: %v", received)
	}
}

func TestParticipantPaths(t *testing.T) {
	var paths []string
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.EscapedPath())
	})

	ctx := context.Background()
	if err := cli.AddParticipant(ctx, 3, "bob"); err != nil {
		t.Fatalf("AddParticipant: %v", err)
	}
	if err := cli.RemoveParticipant(ctx, 3, "bob smith"); err != nil {
		t.Fatalf("RemoveParticipant: %v", err)
	}

	want := []string{
		"POST /projects/3/participants",
		"DELETE /projects/3/participants/bob%20smith",
	}
	for i, w := range want {
		if paths[i] != w {
			t.Errorf("request %d = %q, want %q", i, paths[i], w)
		}
	}
}

func TestDatabaseEndpoints(t *testing.T) {
	var paths []string
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/databases" {
			fmt.Fprint(w, `{"id": 11, "host": "db", "port": 3306, "database_name": "d", "username": "u", "password": "p"}`)
			return
		}
		fmt.Fprint(w, `{}`)
	})

	ctx := context.Background()
	db, err := cli.CreateDatabase(ctx)
	if err != nil {
		t.Fatalf("CreateDatabase: %v", err)
	}
	if db.ID != 11 || db.Linked() {
		t.Errorf("unexpected database: %+v", db)
	}
	if err := cli.LinkDatabase(ctx, 42, db.ID); err != nil {
		t.Fatalf("LinkDatabase: %v", err)
	}
	if err := cli.UnlinkDatabase(ctx, 42); err != nil {
		t.Fatalf("UnlinkDatabase: %v", err)
	}
	if err := cli.DeleteLinkedDatabase(ctx, 42); err != nil {
		t.Fatalf("DeleteLinkedDatabase: %v", err)
	}

	want := []string{
		"POST /databases",
		"POST /projects/42/database/link",
		"POST /projects/42/database/unlink",
		"DELETE /projects/42/database",
	}
	for i, w := range want {
		if paths[i] != w {
			t.Errorf("request %d = %q, want %q", i, paths[i], w)
		}
	}
}

func TestAsError(t *testing.T) {
	if AsError(nil) != nil {
		t.Error("AsError(nil) should be nil")
	}
	structured := &Error{Code: "NOT_FOUND"}
	if got := AsError(fmt.Errorf("wrapped: %w", structured)); got != structured {
		t.Errorf("AsError should unwrap, got %+v", got)
	}
	if got := AsError(errors.New("boom")); got.Code != "CLIENT_ERROR" {
		t.Errorf("plain errors map to CLIENT_ERROR, got %+v", got)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New("", ""); err == nil {
		t.Error("empty base url should fail")
	}
	cli, err := New("api.example.com", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cli.baseURL != "https://api.example.com" {
		t.Errorf("baseURL = %q", cli.baseURL)
	}
}
