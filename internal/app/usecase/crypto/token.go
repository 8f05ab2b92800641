package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	usecase_errors "github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/errors"
)

const tokenExpiration = 24 * time.Hour

var tokenSecret = []byte("go-shop-backend")

type Claims struct {
	jwt.RegisteredClaims

	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// SetTokenSecret replaces the signing key. Called once at startup with
// the configured secret.
func SetTokenSecret(secret string) {
	if len(secret) > 0 {
		tokenSecret = []byte(secret)
	}
}

func BuildJWTString(caller entity.Caller) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiration)),
		},
		UserID:  caller.UserID.String(),
		IsAdmin: caller.IsAdmin,
	})

	tokenString, err := token.SignedString(tokenSecret)
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return tokenString, nil
}

func GetCaller(tokenString string) (entity.Caller, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return tokenSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.Caller{}, usecase_errors.ErrTokenExpired
		}

		return entity.Caller{}, usecase_errors.ErrTokenNotValid
	}

	if !token.Valid {
		return entity.Caller{}, usecase_errors.ErrTokenNotValid
	}

	return entity.Caller{
		UserID:  entity.UserID(claims.UserID),
		IsAdmin: claims.IsAdmin,
	}, nil
}
