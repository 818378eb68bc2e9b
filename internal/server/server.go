// Package server exposes the analyzer over HTTP: multipart document upload
// for analysis and keyword search, mirroring the CLI. Uploads are written
// to a temp file for parsing and always removed afterwards; nothing is
// persisted.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyzer"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/cache"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/parse"
)

// Server is the HTTP front end of the analyzer.
type Server struct {
	cfg    *model.Config
	engine *analyzer.Analyzer
	parser *parse.Parser
	store  cache.Cache // nil when caching is disabled
}

// New creates a server around an engine and an optional result cache.
func New(cfg *model.Config, engine *analyzer.Analyzer, store cache.Cache) *Server {
	return &Server{
		cfg:    cfg,
		engine: engine,
		parser: parse.NewParser(),
		store:  store,
	}
}

// Router builds the HTTP routes with logging, recovery, and per-client
// rate limiting.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(Logger)
	router.Use(Recoverer)
	router.Use(NewRateLimiter(s.cfg.Server.RequestsPerSecond, s.cfg.Server.Burst).Middleware)

	router.HandleFunc("/upload", s.handleUpload).Methods("POST")
	router.HandleFunc("/search", s.handleSearch).Methods("POST")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	return router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting legaldoc API on %s", s.cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"file_name"`
	*model.AnalysisResult
}

type searchResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"file_name"`
	*model.SearchResult
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// handleUpload analyzes an uploaded document.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	text, name, ok := s.ingest(w, r)
	if !ok {
		return
	}

	if s.store != nil {
		if result, found := cache.GetResult(s.store, text); found {
			writeJSON(w, http.StatusOK, uploadResponse{Success: true, FileName: name, AnalysisResult: result})
			return
		}
	}

	result := s.engine.Analyze(text)
	if s.store != nil {
		_ = cache.SetResult(s.store, text, result, 0)
	}
	writeJSON(w, http.StatusOK, uploadResponse{Success: true, FileName: name, AnalysisResult: result})
}

// handleSearch runs a keyword search over an uploaded document.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	text, name, ok := s.ingest(w, r)
	if !ok {
		return
	}

	var keywords []string
	for _, k := range strings.Split(r.FormValue("keywords"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		writeError(w, http.StatusBadRequest, "no keywords provided")
		return
	}

	result := s.engine.Search(text, keywords)
	writeJSON(w, http.StatusOK, searchResponse{Success: true, FileName: name, SearchResult: result})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":            "healthy",
		"supported_formats": parse.SupportedFormats,
	})
}

// ingest extracts the uploaded file's text. On failure it writes the error
// response itself and returns ok=false.
func (s *Server) ingest(w http.ResponseWriter, r *http.Request) (text, name string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid upload: "+err.Error())
		return "", "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return "", "", false
	}
	defer file.Close()

	name = filepath.Base(header.Filename)
	if name == "" || !s.parser.Supported(name) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unsupported file format (supported: %s)", strings.Join(parse.SupportedFormats, ", ")))
		return "", "", false
	}

	text, err = s.parseUpload(file, name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error parsing document: "+err.Error())
		return "", "", false
	}
	return text, name, true
}

// parseUpload spools the upload to a temp file so the format parsers can
// seek, then removes it.
func (s *Server) parseUpload(file multipart.File, name string) (string, error) {
	tmp, err := os.CreateTemp("", "legaldoc-upload-*"+strings.ToLower(filepath.Ext(name)))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return "", fmt.Errorf("spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return s.parser.Parse(tmp.Name())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}
