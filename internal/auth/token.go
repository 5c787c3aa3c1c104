package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// fallback key for dev boxes without a .env; override with JWT_SECRET
const devSigningKey = "grocery_pos_dev_secret_change_me"

func signingKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte(devSigningKey)
}

// Claims carries only the server-side session id. Identity, role and the
// cart all live in the session store; the cookie just proves the id was
// minted by us.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session id into a cookie-sized token.
func GenerateSessionToken(sessionID string) (string, error) {
	expirationTime := time.Now().Add(12 * time.Hour)

	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// ValidateSessionToken returns the session id inside a token, or an error
// if the token is forged or expired.
func ValidateSessionToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return signingKey(), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid token")
	}

	return claims.SessionID, nil
}
