package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
)

func TestAdminMiddleware(t *testing.T) {
	type want struct {
		statusCode  int
		nextReached bool
	}
	tests := []struct {
		name      string
		isContext bool
		callerCtx entity.CallerCtx

		want want
	}{
		{
			name:      "admin caller",
			isContext: true,
			callerCtx: entity.CallerCtx{
				Caller:     entity.Caller{UserID: "00308dff-b6b1-4f1b-8515-d09d3db49951", IsAdmin: true},
				StatusCode: http.StatusOK,
			},

			want: want{
				statusCode:  http.StatusOK,
				nextReached: true,
			},
		},
		{
			name:      "regular caller",
			isContext: true,
			callerCtx: entity.CallerCtx{
				Caller:     entity.Caller{UserID: "00308dff-b6b1-4f1b-8515-d09d3db49951"},
				StatusCode: http.StatusOK,
			},

			want: want{
				statusCode: http.StatusForbidden,
			},
		},
		{
			name:      "unauthenticated caller",
			isContext: true,
			callerCtx: entity.CallerCtx{
				StatusCode: http.StatusUnauthorized,
			},

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:      "caller context undefined",
			isContext: false,

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			writer := httptest.NewRecorder()

			if test.isContext {
				request = request.WithContext(context.WithValue(request.Context(), entity.CallerCtxKey{}, test.callerCtx))
			}

			nextReached := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextReached = true
			})

			handler := AdminMiddleware(nextHandler)
			handler.ServeHTTP(writer, request)

			assert.Equal(t, test.want.statusCode, writer.Result().StatusCode)
			assert.Equal(t, test.want.nextReached, nextReached)
		})
	}
}
