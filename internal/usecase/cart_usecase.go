package usecase

import (
	"context"
	"net/http"

	repo "marketplace/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// カートは(user_id, item_id)ごとに1行で、注文確定時にエンジン側が行を回収する。
type CartUsecase struct {
	cartRepo repo.CartRepository
	itemRepo repo.ItemRepository
	clock    Clock
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	itemRepo repo.ItemRepository,
	clock Clock,
) *CartUsecase {
	return &CartUsecase{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
		clock:    clock,
	}
}

type CartEntryResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	StoreID  string `json:"store_id"`
	Quantity int64  `json:"quantity"`
}

type CartResponse struct {
	Items []CartEntryResponse `json:"items"`
	Total int64               `json:"total"`
}

type AddCartInput struct {
	ItemID   string
	Quantity int64
}

// GetCart はupdated_at昇順のカートを返す（この順がそのまま表示・チェックアウト順）。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	entries, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	resp := CartResponse{Items: make([]CartEntryResponse, 0, len(entries))}
	for _, e := range entries {
		item, err := u.itemRepo.FindByID(ctx, e.ItemID)
		if err == repo.ErrNotFound {
			// 商品が消えたカート行は表示しない（回収はカタログ側の責務）
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		resp.Items = append(resp.Items, CartEntryResponse{
			ItemID:   e.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			StoreID:  item.StoreID,
			Quantity: e.Quantity,
		})
		resp.Total += item.Price * e.Quantity
	}

	return resp, nil
}

// AddToCart は追加・更新を兼ねる。同じ商品をもう一度入れたら数量は上書き。
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddCartInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ItemID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品の存在チェック（在庫の取り置きはしない。予約は注文確定時だけ）
	if _, err := u.itemRepo.FindByID(ctx, in.ItemID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Upsert(ctx, userID, in.ItemID, in.Quantity, u.clock.Now()); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetCart(ctx, userID)
}

// RemoveFromCart は冪等。無い行を消しても204相当で返す。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, userID string, itemID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}

	if err := u.cartRepo.Remove(ctx, userID, itemID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
