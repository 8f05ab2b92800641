package token

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	usecase "github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/converter"
)

func TestTokenParserMiddleware(t *testing.T) {
	type want struct {
		statusCode int
		userID     string
		isAdmin    bool
	}
	tests := []struct {
		name    string
		userID  string
		isAdmin bool

		want want
	}{
		{
			name:   "correct input data",
			userID: "00308dff-b6b1-4f1b-8515-d09d3db49951",

			want: want{
				statusCode: http.StatusOK,
				userID:     "00308dff-b6b1-4f1b-8515-d09d3db49951",
			},
		},
		{
			name:    "admin flag survives the round trip",
			userID:  "00308dff-b6b1-4f1b-8515-d09d3db49951",
			isAdmin: true,

			want: want{
				statusCode: http.StatusOK,
				userID:     "00308dff-b6b1-4f1b-8515-d09d3db49951",
				isAdmin:    true,
			},
		},
		{
			name:   "empty user id",
			userID: "",

			want: want{
				statusCode: http.StatusBadRequest,
				userID:     "",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", nil)
			writer := httptest.NewRecorder()

			bearerHash, err := usecase.SetCallerToAuthHeaderFormat(entity.Caller{
				UserID:  entity.UserID(test.userID),
				IsAdmin: test.isAdmin,
			})
			assert.NoError(t, err)

			request.Header.Add(usecase.AuthHeader, bearerHash)

			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				callerCtx, ok := r.Context().Value(entity.CallerCtxKey{}).(entity.CallerCtx)

				require.True(t, ok)
				assert.Equal(t, callerCtx.Caller.UserID.String(), test.want.userID)
				assert.Equal(t, callerCtx.Caller.IsAdmin, test.want.isAdmin)
				assert.Equal(t, callerCtx.StatusCode, test.want.statusCode)
			})

			handler := TokenParserMiddleware(nextHandler)
			handler.ServeHTTP(writer, request)
		})
	}
}

func TestInvalidTokenParserMiddleware(t *testing.T) {
	type want struct {
		statusCode int
	}
	tests := []struct {
		name string
		hash string

		want want
	}{
		{
			name: "undefined token",
			hash: "Bearer",

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name: "empty user id",
			hash: "",

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", nil)
			writer := httptest.NewRecorder()

			request.Header.Add(usecase.AuthHeader, test.hash)

			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				callerCtx, ok := r.Context().Value(entity.CallerCtxKey{}).(entity.CallerCtx)

				require.True(t, ok)
				assert.Equal(t, callerCtx.StatusCode, test.want.statusCode)
				assert.Empty(t, callerCtx.Caller.UserID.String())
			})

			handler := TokenParserMiddleware(nextHandler)
			handler.ServeHTTP(writer, request)
		})
	}
}
