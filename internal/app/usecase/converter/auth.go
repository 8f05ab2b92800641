package usecase

import (
	"fmt"
	"strings"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/crypto"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

func GetCallerFromAuthHeader(header string) (entity.Caller, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return entity.Caller{}, fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return entity.Caller{}, fmt.Errorf("first auth header part is invalid")
	}

	caller, err := crypto.GetCaller(headerParts[1])
	if err != nil {
		return entity.Caller{}, fmt.Errorf("error while getting caller from token: %w", err)
	}

	return caller, nil
}

func SetCallerToAuthHeaderFormat(caller entity.Caller) (string, error) {
	token, err := crypto.BuildJWTString(caller)
	if err != nil {
		return "", fmt.Errorf("error while creating jwt token: %w", err)
	}

	return fmt.Sprintf("%s %s", bearerHeader, token), nil
}
