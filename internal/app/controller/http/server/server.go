package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/config"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/auth"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/middleware/admin"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/middleware/logger"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/middleware/token"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/orders"
	storage "github.com/ryanhellerud1/go-shop-backend/internal/app/storage/api/model"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/order"
)

type HTTPServer struct {
	server *http.Server

	config  config.Config
	storage storage.Storage

	authenticator auth.AuthUser
	orders        orders.Order
}

func New(config config.Config, storage storage.Storage) *HTTPServer {
	authenticator := auth.New(storage)
	manager := order.New(storage)
	ordersController := orders.New(manager)

	mux := createMux(authenticator, ordersController)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	instance := &HTTPServer{
		server:        server,
		config:        config,
		storage:       storage,
		authenticator: authenticator,
		orders:        ordersController,
	}

	return instance
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func createMux(authenticator auth.AuthUser, orders orders.Order) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)

	r.Post("/api/user/register", authenticator.RegisterUser())
	r.Post("/api/user/login", authenticator.AuthenticateUser())

	r.Route("/api/orders", func(r chi.Router) {
		r.Use(token.TokenParserMiddleware)

		r.Post("/", orders.CreateOrder())
		r.Get("/myorders", orders.GetMyOrders())
		r.Get("/{id}", orders.GetOrder())
		r.Put("/{id}/pay", orders.PayOrder())
		r.Put("/{id}/cancel", orders.CancelOrder())

		r.Group(func(r chi.Router) {
			r.Use(admin.AdminMiddleware)

			r.Get("/", orders.ListOrders())
			r.Get("/stats", orders.GetStats())
			r.Put("/{id}/deliver", orders.DeliverOrder())
			r.Put("/{id}/status", orders.UpdateStatus())
		})
	})

	return r
}
