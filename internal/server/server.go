package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"FcnLang/internal/format"
	"FcnLang/internal/lexer"
	l "FcnLang/internal/logger"
	"FcnLang/internal/parser"
	"FcnLang/internal/repl"
)

type sourceRequest struct {
	Source string `json:"source"`
}

type tokenizeResponse struct {
	Success bool          `json:"success"`
	Tokens  []lexer.Token `json:"tokens,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type parseResponse struct {
	Success     bool             `json:"success"`
	Tree        *format.TreeNode `json:"tree,omitempty"`
	Diagnostics []*parser.Error  `json:"diagnostics"`
	Error       string           `json:"error,omitempty"`
}

type Server struct {
	logger *l.Logger
	strict bool
	mux    *http.ServeMux
}

type Option func(*Server)

// WithStrict makes every request tokenize in strict mode.
func WithStrict(strict bool) Option {
	return func(s *Server) {
		s.strict = strict
	}
}

func New(opts ...Option) *Server {
	s := &Server{logger: l.Get("server")}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()

	// Health & readiness
	mux.HandleFunc("/health", health)

	// POST /tokenize -> token sequence for a source text
	mux.HandleFunc("/tokenize", s.tokenizeHandler)

	// POST /parse -> tree and diagnostics for one function declaration
	mux.HandleFunc("/parse", s.parseHandler)

	s.mux = mux
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{Handler: s.mux}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", ln.Addr())
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

// health returns 200 OK for liveness checks
func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) lexerOptions() []lexer.Option {
	if s.strict {
		return []lexer.Option{lexer.WithStrict()}
	}
	return nil
}

func (s *Server) tokenizeHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	tokens, err := lexer.Tokenize(req.Source, s.lexerOptions()...)
	if err != nil {
		s.logger.Error("Failed to tokenize: %v", err)
		s.writeJSON(w, http.StatusUnprocessableEntity, tokenizeResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, tokenizeResponse{Success: true, Tokens: tokens})
}

func (s *Server) parseHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	result := repl.Execute(req.Source, s.lexerOptions()...)
	response := parseResponse{Diagnostics: result.Diagnostics}
	if response.Diagnostics == nil {
		response.Diagnostics = []*parser.Error{}
	}

	if err := result.Err(); err != nil {
		s.logger.Error("Failed to parse: %v", err)
		response.Error = err.Error()
		s.writeJSON(w, http.StatusUnprocessableEntity, response)
		return
	}

	response.Success = true
	response.Tree = format.Encode(result.Tree)
	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*sourceRequest, bool) {
	if r.Method != http.MethodPost {
		s.logger.Error("Invalid method used: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}

	var req sourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Error("Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	responseBytes, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to marshal response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(responseBytes)
}
