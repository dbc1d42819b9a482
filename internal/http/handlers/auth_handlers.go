package handlers

import (
	"log"
	"net/http"

	"github.com/farmatech/farmatech-client/internal/gateway"
)

// LoginHandler godoc
// @Summary Authenticate against the FarmaTech backend and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and senha"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Invalid credentials"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if creds.Email == "" || creds.Senha == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}

	user, err := authAPI.Login(r.Context(), creds.Email, creds.Senha)
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, LoginResult{Message: "login realizado com sucesso", User: user}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// RegisterHandler godoc
// @Summary Register a new pharmacy account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "account data"
// @Success 201 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateRegistration(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	user, err := authAPI.Register(r.Context(), gateway.Registration{
		Email:           req.Email,
		Senha:           req.Senha,
		Telefone:        req.Telefone,
		FarmaciaName:    req.FarmaciaName,
		ResponsavelName: req.ResponsavelName,
	})
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, LoginResult{Message: "registro realizado com sucesso", User: user}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// LogoutHandler godoc
// @Summary Destroy the local session
// @Tags auth
// @Success 204 {string} string "No content"
// @Router /logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := authAPI.Logout(); err != nil {
		log.Printf("failed to clear session: %v", err)
		http.Error(w, "failed to clear session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler godoc
// @Summary Identity of the logged-in user, decoded from the access token
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {string} string "Not authenticated"
// @Router /me [get]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := authAPI.CurrentUser()
	if err != nil {
		http.Error(w, "não autenticado, faça login", http.StatusUnauthorized)
		return
	}
	if err := writeJSON(w, http.StatusOK, user); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
