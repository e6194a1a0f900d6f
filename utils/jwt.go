package utils

import (
	"errors"
	"time"

	"vedicjivan/config"

	"github.com/golang-jwt/jwt"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateAccessToken creates a short-lived signed access token for the given subject.
func GenerateAccessToken(subject string) (string, error) {
	ttl := time.Duration(config.AppConfig.AccessTokenMinutes) * time.Minute
	return generateToken(subject, TokenTypeAccess, ttl)
}

// GenerateRefreshToken creates a long-lived signed refresh token for the given subject.
func GenerateRefreshToken(subject string) (string, error) {
	ttl := time.Duration(config.AppConfig.RefreshTokenDays) * 24 * time.Hour
	return generateToken(subject, TokenTypeRefresh, ttl)
}

func generateToken(subject, tokenType string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"type": tokenType,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractSubjectFromToken validates a token string, checks that it carries the
// wanted token type, and returns the subject claim.
func ExtractSubjectFromToken(tokenString, wantType string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	if typ, _ := claims["type"].(string); typ != wantType {
		return "", errors.New("unexpected token type")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return sub, nil
}
