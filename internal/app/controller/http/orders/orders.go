package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httputils "github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/utils"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/converter"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/model"
)

const (
	ErrTokenExpired = "token has expired"
	ErrInvalidAuth  = "auth credentials are invalid"
)

// OrderManager is the lifecycle port the handlers translate HTTP
// requests into.
type OrderManager interface {
	PlaceOrder(ctx context.Context, caller entity.Caller, request model.CreateOrderRequest) (entity.Order, error)
	GetOrder(ctx context.Context, caller entity.Caller, id entity.OrderID) (entity.Order, error)
	GetUserOrders(ctx context.Context, caller entity.Caller) (entity.Orders, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.OrderPage, error)
	MarkPaid(ctx context.Context, caller entity.Caller, id entity.OrderID, payment entity.PaymentResult) (entity.Order, error)
	MarkDelivered(ctx context.Context, id entity.OrderID, trackingNumber string) (entity.Order, error)
	SetStatus(ctx context.Context, id entity.OrderID, status entity.OrderStatus, trackingNumber string) (entity.Order, error)
	CancelOrder(ctx context.Context, caller entity.Caller, id entity.OrderID) (entity.Order, error)
	GetOrderStats(ctx context.Context) (entity.OrderStats, error)
}

type Order struct {
	manager OrderManager
}

func New(manager OrderManager) Order {
	return Order{
		manager: manager,
	}
}

func (p *Order) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := p.parseCaller(w, r)
		if err != nil {
			zap.L().Error("error while parsing caller while creating order", zap.Error(err))
			return
		}

		var request model.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			zap.L().Error("error while decoding create order request", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.manager.PlaceOrder(ctx, caller, request)
		if err != nil {
			zap.L().Error("error while placing order", zap.Error(err), zap.String("user_id", caller.UserID.String()))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertOrderToResponse(order))
	}
}

func (p *Order) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := p.parseCaller(w, r)
		if err != nil {
			zap.L().Error("error while parsing caller while getting order", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.manager.GetOrder(ctx, caller, p.parseOrderID(r))
		if err != nil {
			zap.L().Error("error while getting order", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func (p *Order) GetMyOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := p.parseCaller(w, r)
		if err != nil {
			zap.L().Error("error while parsing caller while getting user orders", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		orders, err := p.manager.GetUserOrders(ctx, caller)
		if err != nil {
			zap.L().Error("error while getting user orders", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrdersToResponse(orders))
	}
}

func (p *Order) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		page, err := p.manager.ListOrders(ctx, parseOrderFilter(r))
		if err != nil {
			zap.L().Error("error while listing orders", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderPageToResponse(page))
	}
}

func (p *Order) GetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		stats, err := p.manager.GetOrderStats(ctx)
		if err != nil {
			zap.L().Error("error while getting order stats", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertStatsToResponse(stats))
	}
}

func (p *Order) PayOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := p.parseCaller(w, r)
		if err != nil {
			zap.L().Error("error while parsing caller while paying order", zap.Error(err))
			return
		}

		var request model.PayOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			zap.L().Error("error while decoding pay order request", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.manager.MarkPaid(ctx, caller, p.parseOrderID(r), converter.ConvertPayRequestToPaymentResult(request))
		if err != nil {
			zap.L().Error("error while marking order paid", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func (p *Order) DeliverOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.DeliverOrderRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
				zap.L().Error("error while decoding deliver order request", zap.Error(err))
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			defer r.Body.Close()
		}

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.manager.MarkDelivered(ctx, p.parseOrderID(r), request.TrackingNumber)
		if err != nil {
			zap.L().Error("error while marking order delivered", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func (p *Order) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			zap.L().Error("error while decoding update status request", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.manager.SetStatus(ctx, p.parseOrderID(r), entity.OrderStatus(request.Status), request.TrackingNumber)
		if err != nil {
			zap.L().Error("error while updating order status", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func (p *Order) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := p.parseCaller(w, r)
		if err != nil {
			zap.L().Error("error while parsing caller while cancelling order", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.manager.CancelOrder(ctx, caller, p.parseOrderID(r))
		if err != nil {
			zap.L().Error("error while cancelling order", zap.Error(err))
			httputils.WriteError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func (p *Order) parseOrderID(r *http.Request) entity.OrderID {
	return entity.OrderID(chi.URLParam(r, "id"))
}

func (p *Order) parseCaller(w http.ResponseWriter, r *http.Request) (entity.Caller, error) {
	callerCtx, ok := r.Context().Value(entity.CallerCtxKey{}).(entity.CallerCtx)

	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.Caller{}, fmt.Errorf("caller couldn't obtain from context")
	}

	if callerCtx.StatusCode == http.StatusBadRequest {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return entity.Caller{}, fmt.Errorf("failed auth credentials")
	}

	if callerCtx.StatusCode == http.StatusUnauthorized {
		http.Error(w, ErrTokenExpired, http.StatusUnauthorized)
		return entity.Caller{}, fmt.Errorf(ErrTokenExpired)
	}

	if callerCtx.StatusCode == http.StatusOK && !callerCtx.Caller.Valid() {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return entity.Caller{}, fmt.Errorf("invalid caller with status ok")
	}

	return callerCtx.Caller, nil
}

func parseOrderFilter(r *http.Request) entity.OrderFilter {
	query := r.URL.Query()

	limit, _ := strconv.Atoi(query.Get("limit"))
	page, _ := strconv.Atoi(query.Get("page"))

	return entity.OrderFilter{
		Status: entity.OrderStatus(query.Get("status")),
		UserID: entity.UserID(query.Get("user")),
		Limit:  limit,
		Page:   page,
	}
}
