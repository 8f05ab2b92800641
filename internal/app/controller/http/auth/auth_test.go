package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/auth/mock"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	err_storage "github.com/ryanhellerud1/go-shop-backend/internal/app/storage/api/errors"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/crypto"
)

var (
	inputCorrect = strings.TrimSpace(`
	{
		"login": "login",
		"password": "password"
	}`)

	inputEmptyLogin = strings.TrimSpace(`
	{
		"login": "",
		"password": "password"
	}`)

	inputEmptyPassword = strings.TrimSpace(`
	{
		"login": "login",
		"password": ""
	}`)

	inputInvalid = `<invalid json>`
)

func TestRegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserStore(ctrl)

	type want struct {
		statusCode int
	}
	tests := []struct {
		name            string
		body            string
		createUserErr   error
		isCreateUser    bool
		authHeaderEmpty bool

		want want
	}{
		{
			name:            "correct input data",
			body:            inputCorrect,
			createUserErr:   nil,
			isCreateUser:    true,
			authHeaderEmpty: false,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:            "login exists in storage",
			body:            inputCorrect,
			createUserErr:   err_storage.ErrLoginExists,
			isCreateUser:    true,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusConflict,
			},
		},
		{
			name:            "storage error",
			body:            inputCorrect,
			createUserErr:   errors.New(""),
			isCreateUser:    true,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:            "invalid user credentials",
			body:            inputInvalid,
			createUserErr:   nil,
			isCreateUser:    false,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:            "empty login in user credentials",
			body:            inputEmptyLogin,
			createUserErr:   nil,
			isCreateUser:    false,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:            "empty password in user credentials",
			body:            inputEmptyPassword,
			createUserErr:   nil,
			isCreateUser:    false,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isCreateUser {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(test.createUserErr)
			} else {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)
			}

			auth := New(s)
			handler := auth.RegisterUser()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			err := res.Body.Close()
			require.NoError(t, err)

			if !test.authHeaderEmpty {
				authContent := res.Header.Get("Authorization")
				assert.NotEmpty(t, authContent)
			}
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashedPassword, err := crypto.HashPassword("password")
	require.NoError(t, err)

	storageUser := entity.User{
		ID:       "ac2a4811-4f10-487f-bde3-e39a14af7cd8",
		Login:    "login",
		Password: hashedPassword,
	}

	type want struct {
		statusCode int
	}
	tests := []struct {
		name            string
		body            string
		storageUser     entity.User
		getUserErr      error
		isGetUser       bool
		authHeaderEmpty bool

		want want
	}{
		{
			name:            "correct credentials",
			body:            inputCorrect,
			storageUser:     storageUser,
			isGetUser:       true,
			authHeaderEmpty: false,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:            "login doesn't exist",
			body:            inputCorrect,
			getUserErr:      err_storage.ErrLoginNotFound,
			isGetUser:       true,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name: "wrong password",
			body: strings.TrimSpace(`
			{
				"login": "login",
				"password": "not-the-password"
			}`),
			storageUser:     storageUser,
			isGetUser:       true,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:            "storage error",
			body:            inputCorrect,
			getUserErr:      errors.New(""),
			isGetUser:       true,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:            "invalid user credentials",
			body:            inputInvalid,
			isGetUser:       false,
			authHeaderEmpty: true,

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := mock.NewMockUserStore(ctrl)

			request := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isGetUser {
				s.EXPECT().GetUserByLogin(gomock.Any(), "login").Return(test.storageUser, test.getUserErr)
			} else {
				s.EXPECT().GetUserByLogin(gomock.Any(), gomock.Any()).Times(0)
			}

			auth := New(s)
			handler := auth.AuthenticateUser()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			err := res.Body.Close()
			require.NoError(t, err)

			if !test.authHeaderEmpty {
				authContent := res.Header.Get("Authorization")
				assert.NotEmpty(t, authContent)
			}
		})
	}
}
