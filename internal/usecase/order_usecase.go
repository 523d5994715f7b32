package usecase

import (
	"context"
	"net/http"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"github.com/rs/zerolog"
)

// OrderUsecase は注文のライフサイクルを一手に持つ。
// PLACED → PAID → SHIPPED → RECEIVED → REVIEWED、
// キャンセルは出荷前（PLACED/PAID）のみ。
type OrderUsecase struct {
	tx     repo.TransactionManager
	users  repo.UserRepository
	stores repo.StoreRepository
	clock  Clock
	logger zerolog.Logger
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	users repo.UserRepository,
	stores repo.StoreRepository,
	clock Clock,
	logger zerolog.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		tx:     tx,
		users:  users,
		stores: stores,
		clock:  clock,
		logger: logger,
	}
}

type PlaceOrderInput struct {
	StoreID     string
	ItemIDs     []string
	ShippingFee int64
}

type OrderItemOutput struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type OrderOutput struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	StoreID     string            `json:"store_id"`
	ShippingFee int64             `json:"shipping_fee"`
	CreateAt    time.Time         `json:"create_at"`
	PaidAt      *time.Time        `json:"paid_at"`
	ShippedAt   *time.Time        `json:"shipped_at"`
	ReceivedAt  *time.Time        `json:"received_at"`
	ReviewedAt  *time.Time        `json:"reviewed_at"`
	IsCancelled bool              `json:"is_cancelled"`
	Items       []OrderItemOutput `json:"items"`
}

// PlaceOrder はカートの指定行を1つの注文に畳み込む。
// 予約・注文作成・明細作成・カート行削除は同一トランザクションで、
// どれか1つでも失敗したら全部ロールバックされる（取り置き済みの在庫も戻る）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID string, in PlaceOrderInput) (OrderOutput, error) {
	if userID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.StoreID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid store_id")
	}
	if len(in.ItemIDs) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "empty item_ids")
	}
	if in.ShippingFee < 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid shipping_fee")
	}
	seen := make(map[string]struct{}, len(in.ItemIDs))
	for _, id := range in.ItemIDs {
		if id == "" {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item_id")
		}
		if _, dup := seen[id]; dup {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "duplicate item_id")
		}
		seen[id] = struct{}{}
	}

	// 買い手と店の存在確認
	ok, err := u.users.Exists(ctx, userID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	ok, err = u.stores.Exists(ctx, in.StoreID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "store not found")
	}

	var out OrderOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// カート行を取得。指定したIDのどれかが無ければ注文は作らない
		entries, err := r.Carts().ListByUserAndItems(ctx, userID, in.ItemIDs)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(entries) != len(in.ItemIDs) {
			return NewHTTPError(http.StatusNotFound, "cart entry not found")
		}

		// 在庫に触る前に店のまたがりをチェック
		for _, e := range entries {
			item, err := r.Items().FindByID(ctx, e.ItemID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "item not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if item.StoreID != in.StoreID {
				return NewHTTPError(http.StatusBadRequest, "multi-store cart")
			}
		}

		// 予約。足りなければここで抜けて、先に取った分ごとロールバック
		for _, e := range entries {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, e.ItemID, e.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusConflict, "insufficient stock")
			}
		}

		now := u.clock.Now()
		order := model.Order{
			ID:          newOrderID(now),
			UserID:      userID,
			StoreID:     in.StoreID,
			ShippingFee: in.ShippingFee,
			CreateAt:    now,
			IsCancelled: false,
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 数量はカートの値をここで凍結する
		frozen := make([]model.OrderItem, 0, len(entries))
		for _, e := range entries {
			frozen = append(frozen, model.OrderItem{
				OrderID:  order.ID,
				ItemID:   e.ItemID,
				Quantity: e.Quantity,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, order.ID, frozen); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 取り込んだカート行だけを消す。失敗したら注文ごと無かったことになる
		if err := r.Carts().DeleteByUserAndItems(ctx, userID, in.ItemIDs); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(order, frozen)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}

	u.logger.Info().
		Str("order_id", out.ID).
		Str("user_id", userID).
		Str("store_id", in.StoreID).
		Int("line_items", len(out.Items)).
		Msg("order placed")

	return out, nil
}

// 読み取りは冪等なので、ストレージ起因の失敗だけ一度だけ短いバックオフで再試行する。
// 変更系は部分適用をやり直すと二重予約になり得るので絶対に再試行しない。
func (u *OrderUsecase) readWithRetry(ctx context.Context, fn func(r repo.TxRepos) error) error {
	err := u.tx.WithinTx(ctx, fn)
	if err == nil {
		return nil
	}
	if he, ok := AsHTTPError(err); ok && he.Status != http.StatusInternalServerError {
		return err
	}
	time.Sleep(100 * time.Millisecond)
	return u.tx.WithinTx(ctx, fn)
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID string) (OrderOutput, error) {
	if orderID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.readWithRetry(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID string) ([]OrderOutput, error) {
	if userID == "" {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.readWithRetry(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ItemID:   it.ItemID,
			Quantity: it.Quantity,
		})
	}

	return OrderOutput{
		ID:          o.ID,
		UserID:      o.UserID,
		StoreID:     o.StoreID,
		ShippingFee: o.ShippingFee,
		CreateAt:    o.CreateAt,
		PaidAt:      o.PaidAt,
		ShippedAt:   o.ShippedAt,
		ReceivedAt:  o.ReceivedAt,
		ReviewedAt:  o.ReviewedAt,
		IsCancelled: o.IsCancelled,
		Items:       outItems,
	}
}
