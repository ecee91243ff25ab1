package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"jacsonsite/models"
	"jacsonsite/store"
)

func (s *Server) listCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	companies, err := s.store.ListCompanies(r.Context())
	if err != nil {
		sendInternalError(w, r, "listing companies", err)
		return
	}
	sendJSONResponse(w, http.StatusOK, companies)
}

func (s *Server) getCompanyHandler(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetCompany(r.Context(), r.PathValue("id"))
	if err != nil {
		sendStoreError(w, r, "loading company", "CompanyNotFound", err)
		return
	}
	sendJSONResponse(w, http.StatusOK, c)
}

func (s *Server) createCompanyHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.CompanyPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	c, err := patch.NewCompany()
	if err != nil {
		sendStoreError(w, r, "validating company", "CompanyNotFound", err)
		return
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	if err := s.store.InsertCompany(r.Context(), &c); err != nil {
		s.sendCompanyError(w, r, "creating company", err)
		return
	}
	sendJSONResponse(w, http.StatusCreated, c)
}

func (s *Server) updateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.CompanyPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	c, err := s.store.GetCompany(r.Context(), r.PathValue("id"))
	if err != nil {
		sendStoreError(w, r, "loading company", "CompanyNotFound", err)
		return
	}
	if !checkVersion(w, r, patch.Version, c.Version) {
		return
	}

	changed, err := patch.Apply(&c)
	if err == nil && changed {
		err = s.store.UpdateCompany(r.Context(), &c)
	}
	if err != nil {
		s.sendCompanyError(w, r, "updating company", err)
		return
	}
	sendJSONResponse(w, http.StatusOK, c)
}

func (s *Server) deleteCompanyHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCompany(r.Context(), r.PathValue("id")); err != nil {
		sendStoreError(w, r, "deleting company", "CompanyNotFound", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Company names are unique.
func (s *Server) sendCompanyError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, store.ErrDuplicate) {
		sendFieldError(w, r, "name", "DuplicateValue")
		return
	}
	sendStoreError(w, r, op, "CompanyNotFound", err)
}
