// Package handlers serves the JSON API used by the admin panel and the
// server-rendered public pages.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"jacsonsite/auth"
	"jacsonsite/config"
	"jacsonsite/store"
)

type Server struct {
	store store.Store
	auth  *auth.Service
	cfg   config.Config
	pages *pages
}

func NewServer(st store.Store, authService *auth.Service, cfg config.Config) (*Server, error) {
	p, err := loadPages()
	if err != nil {
		return nil, err
	}
	return &Server{store: st, auth: authService, cfg: cfg, pages: p}, nil
}

// Routes returns the complete handler chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	s.RegisterHandlers(mux)
	return RecoverMiddleware(LoggingMiddleware(CORSMiddleware(SecurityHeadersMiddleware(mux))))
}

func (s *Server) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", s.healthHandler)

	mux.HandleFunc("POST /api/auth/login", s.loginHandler)
	mux.Handle("POST /api/auth/change-password", s.requireAuth(s.changePasswordHandler))
	mux.Handle("GET /api/auth/me", s.requireAuth(s.meHandler))

	s.registerCatalog(mux, "/api/services", s.store.Services(), "ServiceNotFound")
	s.registerCatalog(mux, "/api/projects", s.store.Projects(), "ProjectNotFound")

	mux.HandleFunc("GET /api/companies", s.listCompaniesHandler)
	mux.Handle("POST /api/companies", s.requireAuth(s.createCompanyHandler))
	mux.HandleFunc("GET /api/companies/{id}", s.getCompanyHandler)
	mux.Handle("PUT /api/companies/{id}", s.requireAuth(s.updateCompanyHandler))
	mux.Handle("DELETE /api/companies/{id}", s.requireAuth(s.deleteCompanyHandler))

	mux.HandleFunc("GET /api/home-sections", s.listVisibleSectionsHandler)
	mux.Handle("GET /api/home-sections/all", s.requireAuth(s.listAllSectionsHandler))
	mux.Handle("POST /api/home-sections", s.requireAuth(s.createSectionHandler))
	mux.HandleFunc("GET /api/home-sections/{id}", s.getSectionHandler)
	mux.Handle("PUT /api/home-sections/{id}", s.requireAuth(s.updateSectionHandler))
	mux.Handle("DELETE /api/home-sections/{id}", s.requireAuth(s.deleteSectionHandler))

	mux.HandleFunc("GET /api/content/hero", s.getHeroHandler)
	mux.Handle("PUT /api/content/hero", s.requireAuth(s.updateHeroHandler))
	mux.HandleFunc("GET /api/content/aboutpage", s.getAboutHandler)
	mux.Handle("PUT /api/content/aboutpage", s.requireAuth(s.updateAboutHandler))

	mux.HandleFunc("GET /api/settings", s.getSettingsHandler)
	mux.Handle("PUT /api/settings", s.requireAuth(s.updateSettingsHandler))

	// Public pages
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS()))))
	mux.HandleFunc("GET /{$}", s.homePageHandler)
	mux.HandleFunc("GET /about", s.aboutPageHandler)
	mux.HandleFunc("GET /contact", s.contactPageHandler)
	mux.HandleFunc("GET /services/{id}", s.servicePageHandler)
	mux.HandleFunc("GET /projects/{id}", s.projectPageHandler)
	mux.HandleFunc("/", s.notFoundHandler)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		sendJSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	sendJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// notFoundHandler answers every unmatched route: JSON under /api/, the
// not-found page elsewhere.
func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		sendError(w, r, http.StatusNotFound, "NotFound")
		return
	}
	s.renderNotFound(w, r)
}
