package admin

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/model"

	httputils "github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/utils"
)

// AdminMiddleware rejects requests whose caller doesn't carry the admin
// flag. Runs after the token parser.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerCtx, ok := r.Context().Value(entity.CallerCtxKey{}).(entity.CallerCtx)
		if !ok || callerCtx.StatusCode != http.StatusOK {
			httputils.WriteJSON(w, http.StatusUnauthorized, model.ErrorResponse{Message: "Not authorized"})
			return
		}

		if !callerCtx.Caller.IsAdmin {
			zap.L().Info("non-admin caller on admin route",
				zap.String("user_id", callerCtx.Caller.UserID.String()),
				zap.String("uri", r.RequestURI),
			)
			httputils.WriteJSON(w, http.StatusForbidden, model.ErrorResponse{Message: "Not authorized as admin"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
