package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"jacsonsite/i18n"
	"jacsonsite/models"
	"jacsonsite/store"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx JSON reply. Field names the
// offending payload key for validation failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func sendJSONResponse(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func sendError(w http.ResponseWriter, r *http.Request, status int, key string) {
	lang := i18n.DetectLanguage(r)
	sendJSONResponse(w, status, ErrorResponse{Message: i18n.T(lang, key)})
}

func sendFieldError(w http.ResponseWriter, r *http.Request, field, key string) {
	lang := i18n.DetectLanguage(r)
	msg := i18n.T(lang, key)
	switch key {
	case "FieldRequired", "DuplicateValue":
		msg = i18n.Tf(lang, key, field)
	}
	sendJSONResponse(w, http.StatusBadRequest, ErrorResponse{Message: msg, Field: field})
}

func sendInternalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Printf("Error %s: %v", op, err)
	sendError(w, r, http.StatusInternalServerError, "InternalServerError")
}

// sendStoreError maps a persistence error onto the JSON error taxonomy.
// notFound is the message key used for store.ErrNotFound.
func sendStoreError(w http.ResponseWriter, r *http.Request, op, notFound string, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		sendFieldError(w, r, ve.Field, ve.Key)
	case errors.Is(err, store.ErrNotFound):
		sendError(w, r, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrConflict):
		sendError(w, r, http.StatusConflict, "VersionConflict")
	default:
		sendInternalError(w, r, op, err)
	}
}

// decodeJSON reads the request body into v. On failure it has already
// replied with 400 and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		sendError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return false
	}
	return true
}

// checkVersion rejects a payload whose version differs from the stored one.
func checkVersion(w http.ResponseWriter, r *http.Request, sent *int, stored int) bool {
	if sent != nil && *sent != stored {
		sendError(w, r, http.StatusConflict, "VersionConflict")
		return false
	}
	return true
}
