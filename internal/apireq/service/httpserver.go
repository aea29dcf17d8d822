package service

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/yooztech/mcp-api-request/internal/common/middleware"
)

// HTTPServer exposes the MCP server over HTTP. A single POST /mcp route
// accepts MCP protocol messages; this is an alternative to the stdio
// transport for clients that prefer a network hookup.
type HTTPServer struct {
	Router *chi.Mux
	svc    *Service
}

// NewHTTPServer creates the HTTP transport with routing and middleware
// mounted.
func (s *Service) NewHTTPServer() *HTTPServer {
	h := &HTTPServer{svc: s}
	h.Router = chi.NewRouter()
	h.mountHandlers()
	return h
}

func (h *HTTPServer) mountHandlers() {
	h.Router.Use(middleware.RequestLogger)
	h.Router.Use(middleware.PanicHandler)
	if h.svc.cfg.HandleCORS {
		h.Router.Use(h.handleCORS)
	}
	h.Router.Post("/mcp", h.handleMCP)
	h.Router.Get("/ready", h.getReadiness)
}

func (h *HTTPServer) handleMCP(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"error": "Invalid JSON"}`)
		return
	}
	resp := h.svc.srv.HandleMessage(r.Context(), raw)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *HTTPServer) getReadiness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

// handleCORS provides CORS middleware for cross-origin requests.
func (h *HTTPServer) handleCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Length", "Accept-Encoding"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})(next)
}
