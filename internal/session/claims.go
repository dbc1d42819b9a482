package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/farmatech/farmatech-client/internal/models"
)

// Identity extracts the user identity carried in the access token's claims.
// The token is decoded without signature verification: the client holds no
// signing key, and the backend remains the authority on token validity.
func Identity(access string) (models.User, error) {
	token, _, err := jwt.NewParser().ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to decode access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, fmt.Errorf("unexpected claims type in access token")
	}

	var user models.User
	if v, ok := claims["user_id"].(float64); ok {
		user.ID = int(v)
	}
	if v, ok := claims["email"].(string); ok {
		user.Email = v
	}
	if v, ok := claims["username"].(string); ok {
		user.Username = v
	}
	if v, ok := claims["farmacia_id"].(float64); ok {
		user.FarmaciaID = int(v)
	}
	return user, nil
}
