package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

// TokenProvider issues and verifies the signed identity token carried in the
// Authorization header. Tokens are HS256 JWTs whose subject is the user id.
type TokenProvider struct {
	secret []byte
}

func NewTokenProvider(secret string) *TokenProvider {
	return &TokenProvider{secret: []byte(secret)}
}

func (p *TokenProvider) Generate(userID common.UUID, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and expiry and returns the embedded user id.
// Malformed, tampered, and expired tokens all come back as plain errors; the
// HTTP layer never tells the client which one it was.
func (p *TokenProvider) Parse(tokenString string) (common.UUID, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	userID, err := common.ParseUUID(claims.Subject)
	if err != nil {
		return "", errors.New("token subject is not a user id")
	}
	return userID, nil
}
