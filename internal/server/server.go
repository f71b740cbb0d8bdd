// Package server exposes a farm project over a local HTTP API for
// interactive inspection: catalog, resources, validation, and
// on-demand projection runs.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/sim"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/validation"
)

// DefaultProjectionMonths is the horizon used when a plan request
// carries no months parameter.
const DefaultProjectionMonths = 24

// Server is the local development server for interactive planning.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Handler builds the route table. Split from Start so tests can drive
// it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("GET /api/resources", s.handleResources)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/plan", s.handlePlan)
	mux.HandleFunc("POST /api/plan", s.handlePlan)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("farmplanner server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) load() (*catalog.File, error) {
	return catalog.LoadProject(s.projectPath)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>farmplanner</title></head>
<body style="margin:0;background:#131;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>farmplanner</h1>
<p>API: /api/catalog, /api/resources, /api/validation, /api/plan?months=N</p>
</div>
</body></html>`)
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	farm, err := s.load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, farm.Catalog)
}

func (s *Server) handleResources(w http.ResponseWriter, _ *http.Request) {
	farm, err := s.load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, farm.Resources)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	farm, err := s.load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	report := validation.ValidateSchema(farm)
	report.Merge(validation.ValidateAnalytical(farm))
	writeJSON(w, report)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	farm, err := s.load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	months := DefaultProjectionMonths
	if q := r.URL.Query().Get("months"); q != "" {
		months, err = strconv.Atoi(q)
		if err != nil || months <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("months must be a positive integer (got %q)", q))
			return
		}
	}

	planner, err := sim.New(farm)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	result, err := planner.Run(months)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, result)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
