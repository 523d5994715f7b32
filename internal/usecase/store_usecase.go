package usecase

import (
	"context"
	"net/http"
	"strings"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// StoreUsecase は店プロフィールの単純なCRUD。
// 注文エンジンから見ると「store_exists」を提供する外部コラボレータ。
type StoreUsecase struct {
	storeRepo repo.StoreRepository
	userRepo  repo.UserRepository
	idGen     IDGenerator
}

func NewStoreUsecase(storeRepo repo.StoreRepository, userRepo repo.UserRepository, idGen IDGenerator) *StoreUsecase {
	return &StoreUsecase{storeRepo: storeRepo, userRepo: userRepo, idGen: idGen}
}

type CreateStoreInput struct {
	SellerID        string
	Name            string
	CountyID        int
	DistrictID      int
	DetailAddress   string
	Email           string
	CellphoneNumber string
	TelephoneNumber string
}

func (u *StoreUsecase) CreateStore(ctx context.Context, in CreateStoreInput) (model.Store, error) {
	if in.SellerID == "" {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "invalid seller_id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}

	ok, err := u.userRepo.Exists(ctx, in.SellerID)
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return model.Store{}, NewHTTPError(http.StatusNotFound, "user not found")
	}

	store := model.Store{
		ID:              u.idGen.NewID(),
		SellerID:        in.SellerID,
		Name:            strings.TrimSpace(in.Name),
		CountyID:        in.CountyID,
		DistrictID:      in.DistrictID,
		DetailAddress:   in.DetailAddress,
		Email:           in.Email,
		CellphoneNumber: in.CellphoneNumber,
		TelephoneNumber: in.TelephoneNumber,
	}
	if err := u.storeRepo.Create(ctx, store); err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return store, nil
}

func (u *StoreUsecase) GetStore(ctx context.Context, storeID string) (model.Store, error) {
	if storeID == "" {
		return model.Store{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	store, err := u.storeRepo.FindByID(ctx, storeID)
	if err == repo.ErrNotFound {
		return model.Store{}, NewHTTPError(http.StatusNotFound, "store not found")
	}
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return store, nil
}

func (u *StoreUsecase) DeleteStore(ctx context.Context, storeID string) error {
	if storeID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.storeRepo.Delete(ctx, storeID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "store not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
