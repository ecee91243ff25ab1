package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"jacsonsite/models"
)

func (s *Server) listVisibleSectionsHandler(w http.ResponseWriter, r *http.Request) {
	s.listSections(w, r, true)
}

func (s *Server) listAllSectionsHandler(w http.ResponseWriter, r *http.Request) {
	s.listSections(w, r, false)
}

func (s *Server) listSections(w http.ResponseWriter, r *http.Request, visibleOnly bool) {
	sections, err := s.store.ListSections(r.Context(), visibleOnly)
	if err != nil {
		sendInternalError(w, r, "listing sections", err)
		return
	}
	sendJSONResponse(w, http.StatusOK, sections)
}

// getSectionHandler hides invisible sections from anonymous callers.
func (s *Server) getSectionHandler(w http.ResponseWriter, r *http.Request) {
	sec, err := s.store.GetSection(r.Context(), r.PathValue("id"))
	if err != nil {
		sendStoreError(w, r, "loading section", "SectionNotFound", err)
		return
	}
	if !sec.Visible && !s.isAdmin(r) {
		sendError(w, r, http.StatusNotFound, "SectionNotFound")
		return
	}
	sendJSONResponse(w, http.StatusOK, sec)
}

func (s *Server) createSectionHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.SectionPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	sec, err := patch.NewSection()
	if err != nil {
		sendStoreError(w, r, "validating section", "SectionNotFound", err)
		return
	}
	sec.ID = uuid.NewString()
	sec.CreatedAt = time.Now().UTC()

	if err := s.store.InsertSection(r.Context(), &sec); err != nil {
		sendInternalError(w, r, "creating section", err)
		return
	}
	sendJSONResponse(w, http.StatusCreated, sec)
}

func (s *Server) updateSectionHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.SectionPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	sec, err := s.store.GetSection(r.Context(), r.PathValue("id"))
	if err != nil {
		sendStoreError(w, r, "loading section", "SectionNotFound", err)
		return
	}
	if !checkVersion(w, r, patch.Version, sec.Version) {
		return
	}

	changed, err := patch.Apply(&sec)
	if err == nil && changed {
		err = s.store.UpdateSection(r.Context(), &sec)
	}
	if err != nil {
		sendStoreError(w, r, "updating section", "SectionNotFound", err)
		return
	}
	sendJSONResponse(w, http.StatusOK, sec)
}

func (s *Server) deleteSectionHandler(w http.ResponseWriter, r *http.Request) {
	sec, err := s.store.GetSection(r.Context(), r.PathValue("id"))
	if err != nil {
		sendStoreError(w, r, "loading section", "SectionNotFound", err)
		return
	}
	if !sec.Deletable() {
		sendError(w, r, http.StatusBadRequest, "ServicesSectionProtected")
		return
	}
	if err := s.store.DeleteSection(r.Context(), sec.ID); err != nil {
		sendStoreError(w, r, "deleting section", "SectionNotFound", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
