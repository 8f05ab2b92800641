package validator

import "github.com/ryanhellerud1/go-shop-backend/internal/app/model"

func ValidateUserCredentials(user model.UserCredentialsRequest) bool {
	return len(user.Login) > 0 && len(user.Password) > 0
}
