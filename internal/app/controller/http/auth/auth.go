package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	httputils "github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/utils"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/model"
	err_storage "github.com/ryanhellerud1/go-shop-backend/internal/app/storage/api/errors"
	usecase "github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/converter"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/crypto"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/validator"
)

const (
	ErrEmptyUserRequest = "wrong user credentials format: empty login or password"
	ErrLoginNotExist    = "login doesn't exist"
)

type UserStore interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUserByLogin(ctx context.Context, login string) (entity.User, error)
}

type AuthUser struct {
	storage UserStore
}

func New(storage UserStore) AuthUser {
	return AuthUser{
		storage: storage,
	}
}

func (a *AuthUser) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := a.createUserFromRequestPassHashed(a.createUserID(), w, r)
		if err != nil {
			zap.L().Error("error while parsing user credentials while creating user", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		err = a.storage.CreateUser(ctx, user)
		if err != nil {
			if errors.Is(err, err_storage.ErrLoginExists) {
				zap.L().Error("error while creating user", zap.Error(err), zap.String("login", user.Login))
				w.WriteHeader(http.StatusConflict)
				return
			}

			zap.L().Error("error while creating user", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		a.setCallerToHeader(entity.Caller{UserID: user.ID, IsAdmin: user.IsAdmin}, w)
	}
}

func (a *AuthUser) AuthenticateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inputUser, err := a.createUserFromRequest(entity.UserID(""), w, r)
		if err != nil {
			zap.L().Error("error while parsing user credentials while authenticating user", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		storageUser, err := a.storage.GetUserByLogin(ctx, inputUser.Login)
		if err != nil {
			zap.L().Error("error while getting user while authentication request", zap.Error(err))

			if errors.Is(err, err_storage.ErrLoginNotFound) {
				http.Error(w, ErrLoginNotExist, http.StatusUnauthorized)
				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = crypto.CheckPasswordHash(inputUser.Password, storageUser.Password)
		if err != nil {
			zap.L().Error("error while checking user password while authentication request", zap.Error(err))
			if errors.Is(err, crypto.ErrWrongPassword) {
				http.Error(w, ErrLoginNotExist, http.StatusUnauthorized)
				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		a.setCallerToHeader(entity.Caller{UserID: storageUser.ID, IsAdmin: storageUser.IsAdmin}, w)
	}
}

func (a *AuthUser) createUserFromRequestPassHashed(userID entity.UserID, w http.ResponseWriter, r *http.Request) (entity.User, error) {
	user, err := a.createUserFromRequest(userID, w, r)
	if err != nil {
		return user, err
	}

	hashedPassword, err := crypto.HashPassword(user.Password)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.User{}, fmt.Errorf("error while hashing password: %w", err)
	}
	user.Password = hashedPassword

	return user, nil
}

func (a *AuthUser) createUserFromRequest(userID entity.UserID, w http.ResponseWriter, r *http.Request) (entity.User, error) {
	var userCreds model.UserCredentialsRequest
	err := json.NewDecoder(r.Body).Decode(&userCreds)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return entity.User{}, fmt.Errorf("error while decoding user credentials request: %w", err)
	}
	defer r.Body.Close()

	if !validator.ValidateUserCredentials(userCreds) {
		http.Error(w, ErrEmptyUserRequest, http.StatusBadRequest)
		return entity.User{}, errors.New(ErrEmptyUserRequest)
	}

	return entity.User{
		ID:       userID,
		Login:    userCreds.Login,
		Password: userCreds.Password,
	}, nil
}

func (a *AuthUser) setCallerToHeader(caller entity.Caller, w http.ResponseWriter) {
	token, err := usecase.SetCallerToAuthHeaderFormat(caller)
	if err != nil {
		zap.L().Error("error while preparing auth header", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add(usecase.AuthHeader, token)
	w.WriteHeader(http.StatusOK)
}

func (a *AuthUser) createUserID() entity.UserID {
	uuid := uuid.New()
	userID := entity.UserID(uuid.String())

	return userID
}
