package handlers

import (
	"errors"
	"net/http"

	"jacsonsite/auth"
	"jacsonsite/i18n"
)

type LoginResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	sess, err := s.auth.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			sendError(w, r, http.StatusUnauthorized, "InvalidCredentials")
			return
		}
		sendInternalError(w, r, "logging in", err)
		return
	}

	sendJSONResponse(w, http.StatusOK, LoginResponse{
		ID:       sess.User.ID,
		Username: sess.User.Username,
		Token:    sess.Token,
	})
}

func (s *Server) changePasswordHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	var input struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	err := s.auth.ChangePassword(r.Context(), user.ID, input.OldPassword, input.NewPassword)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrOldPassword):
		lang := i18n.DetectLanguage(r)
		sendJSONResponse(w, http.StatusUnauthorized, ErrorResponse{Message: i18n.T(lang, "OldPasswordIncorrect"), Field: "oldPassword"})
		return
	case errors.Is(err, auth.ErrPasswordTooShort):
		sendFieldError(w, r, "newPassword", "PasswordTooShort")
		return
	case errors.Is(err, auth.ErrUserNotFound):
		sendError(w, r, http.StatusUnauthorized, "UserNotFound")
		return
	default:
		sendInternalError(w, r, "changing password", err)
		return
	}

	lang := i18n.DetectLanguage(r)
	sendJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": i18n.T(lang, "PasswordChanged"),
	})
}

func (s *Server) meHandler(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())
	sendJSONResponse(w, http.StatusOK, user)
}
