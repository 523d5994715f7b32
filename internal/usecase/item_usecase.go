package usecase

import (
	"context"
	"net/http"
	"strings"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// ItemUsecase は商品カタログと写真の管理。
// カートや注文明細から参照されている商品は消せない（参照切れでカートを壊さないため）。
type ItemUsecase struct {
	itemRepo  repo.ItemRepository
	photoRepo repo.ItemPhotoRepository
	storeRepo repo.StoreRepository
	idGen     IDGenerator
}

func NewItemUsecase(
	itemRepo repo.ItemRepository,
	photoRepo repo.ItemPhotoRepository,
	storeRepo repo.StoreRepository,
	idGen IDGenerator,
) *ItemUsecase {
	return &ItemUsecase{
		itemRepo:  itemRepo,
		photoRepo: photoRepo,
		storeRepo: storeRepo,
		idGen:     idGen,
	}
}

type CreateItemInput struct {
	Name        string
	Description string
	Price       int64
	StoreID     string
	Inventory   int64
}

type ItemOutput struct {
	model.Item
	Photos []model.ItemPhoto `json:"photos"`
}

func (u *ItemUsecase) CreateItem(ctx context.Context, in CreateItemInput) (model.Item, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price < 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.Inventory < 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid inventory")
	}
	if in.StoreID == "" {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid store_id")
	}

	ok, err := u.storeRepo.Exists(ctx, in.StoreID)
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "store not found")
	}

	item := model.Item{
		ID:          u.idGen.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		StoreID:     in.StoreID,
		Inventory:   in.Inventory,
	}
	if err := u.itemRepo.Create(ctx, item); err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *ItemUsecase) GetItem(ctx context.Context, itemID string) (ItemOutput, error) {
	if itemID == "" {
		return ItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.itemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return ItemOutput{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return ItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	photos, err := u.photoRepo.ListByItemID(ctx, itemID)
	if err != nil {
		return ItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ItemOutput{Item: item, Photos: photos}, nil
}

// DeleteItem は参照が残っている商品を拒否する
func (u *ItemUsecase) DeleteItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	referenced, err := u.itemRepo.HasReferences(ctx, itemID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if referenced {
		return NewHTTPError(http.StatusConflict, "item is referenced by a cart or an order")
	}

	err = u.itemRepo.Delete(ctx, itemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ItemUsecase) AddPhoto(ctx context.Context, itemID string) (model.ItemPhoto, error) {
	if itemID == "" {
		return model.ItemPhoto{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if err == repo.ErrNotFound {
			return model.ItemPhoto{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return model.ItemPhoto{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	photo := model.ItemPhoto{
		ID:     u.idGen.NewID(),
		ItemID: itemID,
	}
	if err := u.photoRepo.Create(ctx, photo); err != nil {
		return model.ItemPhoto{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return photo, nil
}

func (u *ItemUsecase) RemovePhoto(ctx context.Context, photoID string) error {
	if photoID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.photoRepo.Delete(ctx, photoID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "photo not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ItemUsecase) ListStoreItems(ctx context.Context, storeID string) ([]model.Item, error) {
	if storeID == "" {
		return []model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	items, err := u.itemRepo.ListByStoreID(ctx, storeID)
	if err != nil {
		return []model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
