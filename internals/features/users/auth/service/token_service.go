package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const AccessTokenTTL = 12 * time.Hour

var (
	ErrTokenInvalido = errors.New("token inválido")
	ErrTokenExpirado = errors.New("token expirado")
)

// GerarAccessToken emite o JWT de acesso com o user_id numérico. O jti
// permite distinguir tokens do mesmo usuário na blacklist.
func GerarAccessToken(usuarioID uint, secret string, agora time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": usuarioID,
		"jti":     uuid.NewString(),
		"iat":     agora.Unix(),
		"exp":     agora.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken valida assinatura e expiração e devolve o user_id e o
// instante de expiração (usado para a entrada na blacklist no logout).
func ParseAccessToken(tokenString, secret string) (uint, time.Time, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, time.Time{}, ErrTokenExpirado
		}
		return 0, time.Time{}, ErrTokenInvalido
	}
	if !tok.Valid {
		return 0, time.Time{}, ErrTokenInvalido
	}

	idFloat, ok := claims["user_id"].(float64)
	if !ok || idFloat <= 0 {
		return 0, time.Time{}, ErrTokenInvalido
	}

	var exp time.Time
	if expFloat, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(expFloat), 0)
	}

	return uint(idFloat), exp, nil
}
