package main

import (
	"go.uber.org/zap"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/config"
	server "github.com/ryanhellerud1/go-shop-backend/internal/app/controller/http/server"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/logger"
	storage "github.com/ryanhellerud1/go-shop-backend/internal/app/storage/api"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/crypto"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}

	crypto.SetTokenSecret(config.JWTSecret)

	db, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer db.Close()

	httpServer := server.New(config, db)
	httpServer.StartHTTPServer()
}
