package server

import (
	"marketplace/internal/config"
	"marketplace/internal/handler"
	"marketplace/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type Handlers struct {
	Auth  *handler.AuthHandler
	User  *handler.UserHandler
	Store *handler.StoreHandler
	Item  *handler.ItemHandler
	Cart  *handler.CartHandler
	Order *handler.OrderHandler
}

// New はechoを組み立てる。起動は呼び出し側でStart。
func New(cfg config.Config, logger zerolog.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLogger(logger))

	h.Auth.RegisterRoutes(e)
	h.User.RegisterRoutes(e)
	h.Store.RegisterRoutes(e)
	h.Item.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)

	return e
}
