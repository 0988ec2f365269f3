// Package web provides the serve-mode HTTP server: it exposes the
// generated output directory (calendar files, summary, index) plus a
// health endpoint.
package web

import (
	"encoding/json"
	"net/http"

	appLog "hamcal/internal/log"
)

// Server serves the output directory over HTTP.
type Server struct {
	outDir string
	mux    *http.ServeMux
}

// NewServer constructs a Server rooted at outDir.
func NewServer(outDir string) *Server {
	s := &Server{
		outDir: outDir,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.Handle("/", http.FileServer(http.Dir(s.outDir)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Start binds the server to addr. It blocks until the listener fails.
func Start(addr, outDir string) error {
	s := NewServer(outDir)
	appLog.Info("starting HTTP server", "listen", "http://"+addr, "out_dir", outDir)
	return http.ListenAndServe(addr, s.Handler())
}
