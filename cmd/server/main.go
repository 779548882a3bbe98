package main

import (
	"context"
	"errors"
	"net/http"

	"techstore-be/internal/cart"
	"techstore-be/internal/catalog"
	"techstore-be/internal/checkout"
	"techstore-be/internal/config"
	"techstore-be/internal/logger"
	"techstore-be/internal/middleware"
	"techstore-be/internal/transport"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	cat := catalog.New()
	if err := cat.Load(context.Background(), cfg.CatalogSource); err != nil {
		// The storefront still serves; listing pages stay empty.
		logger.L().Warn("catalog load failed, starting empty", zap.Error(err))
	}

	repo, err := cart.NewLevelDBRepository(cfg.CartDBPath)
	if err != nil {
		logger.L().Fatal("failed to open cart storage", zap.Error(err))
	}
	defer repo.Close()

	store := cart.NewStore(repo)
	store.Restore()

	flow := checkout.NewFlow(store)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	transport.Setup(e, transport.NewHandler(cat, store, flow), middleware.NewRateLimiter())

	logger.L().Info("storefront listening", zap.String("port", cfg.AppPort))
	if err := e.Start(":" + cfg.AppPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
