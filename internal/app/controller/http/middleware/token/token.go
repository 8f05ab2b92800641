package token

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	usecase "github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/converter"
)

// TokenParserMiddleware resolves the Bearer token into the caller
// identity and stores it in the request context together with the auth
// status the handlers act on.
func TokenParserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header[usecase.AuthHeader]
		callerCtx := processAuthHeader(authHeader)

		ctx := context.WithValue(r.Context(), entity.CallerCtxKey{}, callerCtx)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func processAuthHeader(authHeader []string) entity.CallerCtx {
	if len(authHeader) == 0 {
		zap.L().Info("authorization header is empty")

		return entity.CreateCallerCtx(entity.Caller{}, http.StatusUnauthorized)
	}

	caller, err := usecase.GetCallerFromAuthHeader(authHeader[0])
	if err != nil {
		zap.L().Error("error while parsing auth header", zap.Error(err))

		return entity.CreateCallerCtx(entity.Caller{}, http.StatusUnauthorized)
	}

	if !caller.Valid() {
		zap.L().Error("empty caller id in authorization header")

		return entity.CreateCallerCtx(entity.Caller{}, http.StatusBadRequest)
	}

	return entity.CreateCallerCtx(caller, http.StatusOK)
}
