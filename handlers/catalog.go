package handlers

import (
	"errors"
	"net/http"
	"time"

	"jacsonsite/models"
	"jacsonsite/store"
)

// maxSlugAttempts bounds the suffix increments tried when two items with the
// same title are created within the same millisecond.
const maxSlugAttempts = 10

// registerCatalog mounts the CRUD routes of a slug-keyed collection
// (services, projects) under prefix.
func (s *Server) registerCatalog(mux *http.ServeMux, prefix string, c store.Catalog, notFound string) {
	h := catalogHandlers{catalog: c, notFound: notFound}
	mux.HandleFunc("GET "+prefix, h.list)
	mux.Handle("POST "+prefix, s.requireAuth(h.create))
	mux.HandleFunc("GET "+prefix+"/{id}", h.get)
	mux.Handle("PUT "+prefix+"/{id}", s.requireAuth(h.update))
	mux.Handle("DELETE "+prefix+"/{id}", s.requireAuth(h.delete))
}

type catalogHandlers struct {
	catalog  store.Catalog
	notFound string
}

func (h catalogHandlers) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		sendInternalError(w, r, "listing catalog", err)
		return
	}
	sendJSONResponse(w, http.StatusOK, items)
}

func (h catalogHandlers) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		sendStoreError(w, r, "loading catalog item", h.notFound, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, item)
}

func (h catalogHandlers) create(w http.ResponseWriter, r *http.Request) {
	var patch models.CatalogPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	item, err := patch.NewCatalogItem()
	if err != nil {
		sendStoreError(w, r, "validating catalog item", h.notFound, err)
		return
	}

	now := time.Now()
	item.CreatedAt = now.UTC()
	suffix := now.UnixMilli()
	for attempt := 0; ; attempt++ {
		item.ID = models.NewSlug(item.Title, suffix+int64(attempt))
		err = h.catalog.Insert(r.Context(), &item)
		if !errors.Is(err, store.ErrDuplicate) || attempt+1 == maxSlugAttempts {
			break
		}
	}
	if err != nil {
		sendInternalError(w, r, "creating catalog item", err)
		return
	}
	sendJSONResponse(w, http.StatusCreated, item)
}

func (h catalogHandlers) update(w http.ResponseWriter, r *http.Request) {
	var patch models.CatalogPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	item, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		sendStoreError(w, r, "loading catalog item", h.notFound, err)
		return
	}
	if !checkVersion(w, r, patch.Version, item.Version) {
		return
	}

	changed, err := patch.Apply(&item)
	if err == nil && changed {
		err = h.catalog.Update(r.Context(), &item)
	}
	if err != nil {
		sendStoreError(w, r, "updating catalog item", h.notFound, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, item)
}

func (h catalogHandlers) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		sendStoreError(w, r, "deleting catalog item", h.notFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
