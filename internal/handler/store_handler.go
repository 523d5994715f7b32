package handler

import (
	"net/http"

	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

type StoreHandler struct {
	uc     *usecase.StoreUsecase
	itemUC *usecase.ItemUsecase
}

func NewStoreHandler(uc *usecase.StoreUsecase, itemUC *usecase.ItemUsecase) *StoreHandler {
	return &StoreHandler{uc: uc, itemUC: itemUC}
}

type StoreCreateRequest struct {
	SellerID        string `json:"seller_id"`
	Name            string `json:"name"`
	CountyID        int    `json:"county_id"`
	DistrictID      int    `json:"district_id"`
	DetailAddress   string `json:"detail_address"`
	Email           string `json:"email"`
	CellphoneNumber string `json:"cellphone_number"`
	TelephoneNumber string `json:"telephone_number"`
}

func (h *StoreHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/stores")
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.remove)
	g.GET("/:id/items", h.items)
}

func (h *StoreHandler) create(c echo.Context) error {
	var req StoreCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	store, err := h.uc.CreateStore(c.Request().Context(), usecase.CreateStoreInput{
		SellerID:        req.SellerID,
		Name:            req.Name,
		CountyID:        req.CountyID,
		DistrictID:      req.DistrictID,
		DetailAddress:   req.DetailAddress,
		Email:           req.Email,
		CellphoneNumber: req.CellphoneNumber,
		TelephoneNumber: req.TelephoneNumber,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, store)
}

func (h *StoreHandler) get(c echo.Context) error {
	store, err := h.uc.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) remove(c echo.Context) error {
	if err := h.uc.DeleteStore(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *StoreHandler) items(c echo.Context) error {
	items, err := h.itemUC.ListStoreItems(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
