package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	New().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestTokenize(t *testing.T) {
	rec := post(t, New(), "/tokenize", `{"source": "x :: Int32"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Tokens  []struct {
			Class string `json:"class"`
			Text  string `json:"text"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || len(resp.Tokens) != 3 {
		t.Fatalf("Unexpected response: %s", rec.Body.String())
	}
	if resp.Tokens[1].Class != "Symbol" || resp.Tokens[1].Text != "::" {
		t.Errorf("Unexpected second token: %+v", resp.Tokens[1])
	}
}

func TestTokenizeErrors(t *testing.T) {
	rec := post(t, New(), "/tokenize", `{"source": "\"open"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for unterminated string, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unterminated string") {
		t.Errorf("Expected error message in body, got %s", rec.Body.String())
	}

	rec = post(t, New(WithStrict(true)), "/tokenize", `{"source": "a @ b"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 in strict mode, got %d", rec.Code)
	}

	rec = post(t, New(), "/tokenize", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid body, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	New().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tokenize", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET, got %d", rec.Code)
	}
}

func TestParse(t *testing.T) {
	body := `{"source": "fcn add(x :: Int32, y :: Int32) -> Int32 {\n return add(x, y)\n}"}`
	rec := post(t, New(), "/parse", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success     bool             `json:"success"`
		Tree        map[string]any   `json:"tree"`
		Diagnostics []map[string]any `json:"diagnostics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || resp.Tree["kind"] != "FunctionDecl" || resp.Tree["name"] != "add" {
		t.Errorf("Unexpected response: %s", rec.Body.String())
	}
	if resp.Diagnostics == nil || len(resp.Diagnostics) != 0 {
		t.Errorf("Expected an empty diagnostics list, got %v", resp.Diagnostics)
	}
}

func TestParseFailure(t *testing.T) {
	rec := post(t, New(), "/parse", `{"source": "fcn add() -> Void { }"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Success || !strings.Contains(resp.Error, "invalid return type") {
		t.Errorf("Unexpected response: %s", rec.Body.String())
	}
}

func TestParseReportsDiagnostics(t *testing.T) {
	rec := post(t, New(), "/parse", `{"source": "fcn f() -> Int32 { var Int32 :: Int32 = 1 }"}`)

	var resp struct {
		Success     bool `json:"success"`
		Diagnostics []struct {
			Kind string `json:"kind"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Diagnostics) == 0 || resp.Diagnostics[0].Kind != "InvalidName" {
		t.Errorf("Expected an InvalidName diagnostic, got %s", rec.Body.String())
	}
}

func TestServeUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New().Serve(ctx, ln)
	}()

	if err := WaitForHealthy(context.Background(), "http://"+ln.Addr().String()); err != nil {
		t.Fatalf("Server never became healthy: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Server did not shut down")
	}
}

func TestWaitForHealthyGivesUpWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	if err := WaitForHealthy(ctx, "http://127.0.0.1:1"); err == nil {
		t.Error("Expected an error for an unreachable server")
	}
}
