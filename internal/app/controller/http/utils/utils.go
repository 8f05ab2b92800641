package httputils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/model"
	err_storage "github.com/ryanhellerud1/go-shop-backend/internal/app/storage/api/errors"
	usecase_errors "github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/errors"
)

const (
	RequestTimeout = 3 * time.Second
)

func GetCallerFromContext(r *http.Request) (entity.Caller, error) {
	callerCtx, ok := r.Context().Value(entity.CallerCtxKey{}).(entity.CallerCtx)
	if !ok {
		return entity.Caller{}, fmt.Errorf("caller couldn't obtain from context")
	}

	if callerCtx.StatusCode == http.StatusOK && !callerCtx.Caller.Valid() {
		return entity.Caller{}, fmt.Errorf("invalid caller with status ok")
	}

	return callerCtx.Caller, nil
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	out, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("error while marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}

// WriteError maps the error taxonomy to HTTP statuses: validation and
// stock failures to 400, missing entities to 404, authorization to 403,
// everything else to 500.
func WriteError(w http.ResponseWriter, err error) {
	var validationErr usecase_errors.ValidationError
	if errors.As(err, &validationErr) {
		WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Message: validationErr.Message})
		return
	}

	var stockErr *err_storage.InsufficientStockError
	if errors.As(err, &stockErr) {
		WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Message: stockErr.Error()})
		return
	}

	switch {
	case errors.Is(err, err_storage.ErrOrderNotFound):
		WriteJSON(w, http.StatusNotFound, model.ErrorResponse{Message: "Order not found"})
	case errors.Is(err, err_storage.ErrProductNotFound):
		WriteJSON(w, http.StatusNotFound, model.ErrorResponse{Message: err.Error()})
	case errors.Is(err, usecase_errors.ErrNotAuthorized):
		WriteJSON(w, http.StatusForbidden, model.ErrorResponse{Message: "Not authorized"})
	default:
		WriteJSON(w, http.StatusInternalServerError, model.ErrorResponse{Message: "Server error"})
	}
}
