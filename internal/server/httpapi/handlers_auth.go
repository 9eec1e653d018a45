package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskhub/internal/common"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeMsg(w, http.StatusBadRequest, "User already exists")
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err)
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", req.Email)
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password share one message so the
		// endpoint cannot be used to enumerate accounts.
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMsg(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
