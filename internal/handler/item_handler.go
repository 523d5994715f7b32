package handler

import (
	"net/http"

	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	uc *usecase.ItemUsecase
}

func NewItemHandler(uc *usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

type ItemCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	StoreID     string `json:"store_id"`
	Inventory   int64  `json:"inventory"`
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/items")
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.remove)
	g.POST("/:id/photos", h.addPhoto)

	e.DELETE("/api/photos/:id", h.removePhoto)
}

func (h *ItemHandler) create(c echo.Context) error {
	var req ItemCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	item, err := h.uc.CreateItem(c.Request().Context(), usecase.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		StoreID:     req.StoreID,
		Inventory:   req.Inventory,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) get(c echo.Context) error {
	out, err := h.uc.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) remove(c echo.Context) error {
	if err := h.uc.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ItemHandler) addPhoto(c echo.Context) error {
	photo, err := h.uc.AddPhoto(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, photo)
}

func (h *ItemHandler) removePhoto(c echo.Context) error {
	if err := h.uc.RemovePhoto(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
