package gateway

import (
	"context"
	"net/http"

	"github.com/farmatech/farmatech-client/internal/models"
	"github.com/farmatech/farmatech-client/internal/session"
)

// Registration carries the fields of the signup form. The backend uses the
// email as username.
type Registration struct {
	Email           string
	Senha           string
	Telefone        string
	FarmaciaName    string
	ResponsavelName string
}

type authResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    models.User `json:"user"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
}

// Login authenticates against the backend and stores the issued token pair.
func (c *Client) Login(ctx context.Context, email, senha string) (models.User, error) {
	payload := map[string]string{
		"username": email,
		"password": senha,
	}

	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/login/", payload, &res, false); err != nil {
		return models.User{}, err
	}
	if !res.Success || res.Access == "" {
		msg := res.Message
		if msg == "" {
			msg = "credenciais inválidas"
		}
		return models.User{}, &APIError{StatusCode: http.StatusUnauthorized, Message: msg}
	}

	if err := c.store.SetTokens(session.Tokens{Access: res.Access, Refresh: res.Refresh}); err != nil {
		return models.User{}, err
	}
	return res.User, nil
}

// Register creates a new account and stores the issued token pair, logging
// the user in.
func (c *Client) Register(ctx context.Context, reg Registration) (models.User, error) {
	payload := map[string]string{
		"username":        reg.Email,
		"password":        reg.Senha,
		"email":           reg.Email,
		"telefone":        reg.Telefone,
		"farmaciaName":    reg.FarmaciaName,
		"responsavelName": reg.ResponsavelName,
		"senha":           reg.Senha,
	}

	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/register/", payload, &res, false); err != nil {
		return models.User{}, err
	}
	if !res.Success || res.Access == "" {
		msg := res.Message
		if msg == "" {
			msg = "erro no registro"
		}
		return models.User{}, &APIError{StatusCode: http.StatusBadRequest, Message: msg}
	}

	if err := c.store.SetTokens(session.Tokens{Access: res.Access, Refresh: res.Refresh}); err != nil {
		return models.User{}, err
	}
	return res.User, nil
}

// Logout destroys the local session. The backend keeps no session state
// beyond the token pair, so clearing the store is sufficient.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// CurrentUser returns the identity carried in the stored access token.
func (c *Client) CurrentUser() (models.User, error) {
	t, err := c.store.Tokens()
	if err != nil {
		return models.User{}, err
	}
	return session.Identity(t.Access)
}
