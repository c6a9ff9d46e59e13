package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateSessionJWT signs a short-lived token carrying the traversal
// session ID. The token is the caregiver's only handle on the session.
func GenerateSessionJWT(sessionID, secret string, expiryMinutes int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
