package usecase

import (
	"context"
	"net/http"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// 支払い・出荷・受取・レビュー・キャンセルの各遷移。
// どれも 注文ロード → ロード結果で合法性チェック → 条件付きUPDATE の順。
// チェックを通ったのにUPDATEが0行なら、間に他のリクエストが割り込んでいる（409 conflict）。
// 同じ前提でのやり直しは決定的に同じ遷移違反を返すので、再送しても副作用は増えない。

func (u *OrderUsecase) MarkPaid(ctx context.Context, orderID string) (OrderOutput, error) {
	return u.transition(ctx, orderID, func(o model.Order) error {
		if o.IsCancelled {
			return NewHTTPError(http.StatusConflict, "order cancelled")
		}
		if o.PaidAt != nil {
			return NewHTTPError(http.StatusConflict, "already paid")
		}
		return nil
	}, func(ctx context.Context, r repo.TxRepos, o *model.Order) (bool, error) {
		now := u.clock.Now()
		ok, err := r.Orders().SetPaidAt(ctx, o.ID, now)
		if ok {
			o.PaidAt = &now
		}
		return ok, err
	})
}

func (u *OrderUsecase) MarkShipped(ctx context.Context, orderID string) (OrderOutput, error) {
	return u.transition(ctx, orderID, func(o model.Order) error {
		if o.IsCancelled {
			return NewHTTPError(http.StatusConflict, "order cancelled")
		}
		if o.PaidAt == nil {
			return NewHTTPError(http.StatusConflict, "not paid yet")
		}
		if o.ShippedAt != nil {
			return NewHTTPError(http.StatusConflict, "already shipped")
		}
		return nil
	}, func(ctx context.Context, r repo.TxRepos, o *model.Order) (bool, error) {
		now := u.clock.Now()
		ok, err := r.Orders().SetShippedAt(ctx, o.ID, now)
		if ok {
			o.ShippedAt = &now
		}
		return ok, err
	})
}

func (u *OrderUsecase) MarkReceived(ctx context.Context, orderID string) (OrderOutput, error) {
	return u.transition(ctx, orderID, func(o model.Order) error {
		if o.ShippedAt == nil {
			return NewHTTPError(http.StatusConflict, "not shipped yet")
		}
		if o.ReceivedAt != nil {
			return NewHTTPError(http.StatusConflict, "already received")
		}
		return nil
	}, func(ctx context.Context, r repo.TxRepos, o *model.Order) (bool, error) {
		now := u.clock.Now()
		ok, err := r.Orders().SetReceivedAt(ctx, o.ID, now)
		if ok {
			o.ReceivedAt = &now
		}
		return ok, err
	})
}

func (u *OrderUsecase) MarkReviewed(ctx context.Context, orderID string) (OrderOutput, error) {
	return u.transition(ctx, orderID, func(o model.Order) error {
		if o.ReceivedAt == nil {
			return NewHTTPError(http.StatusConflict, "not received yet")
		}
		if o.ReviewedAt != nil {
			return NewHTTPError(http.StatusConflict, "already reviewed")
		}
		return nil
	}, func(ctx context.Context, r repo.TxRepos, o *model.Order) (bool, error) {
		now := u.clock.Now()
		ok, err := r.Orders().SetReviewedAt(ctx, o.ID, now)
		if ok {
			o.ReviewedAt = &now
		}
		return ok, err
	})
}

// Cancel はキャンセル印を付けたうえで、明細の数量分だけ在庫を戻す。
// 同一トランザクションなので、途中状態（印だけ付いて在庫が戻っていない注文）は外から見えない。
func (u *OrderUsecase) Cancel(ctx context.Context, orderID string) (OrderOutput, error) {
	return u.transition(ctx, orderID, func(o model.Order) error {
		if o.IsCancelled {
			return NewHTTPError(http.StatusConflict, "already cancelled")
		}
		if o.ShippedAt != nil {
			return NewHTTPError(http.StatusConflict, "cannot cancel shipped order")
		}
		return nil
	}, func(ctx context.Context, r repo.TxRepos, o *model.Order) (bool, error) {
		ok, err := r.Orders().MarkCancelled(ctx, o.ID)
		if err != nil || !ok {
			return ok, err
		}
		o.IsCancelled = true

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return false, err
		}
		for _, it := range items {
			err := r.Inventory().IncreaseStock(ctx, it.ItemID, it.Quantity)
			if err == repo.ErrNotFound {
				// 商品が消えていたら戻し先が無い。在庫は捨てて記録だけ残す
				u.logger.Warn().
					Str("order_id", o.ID).
					Str("item_id", it.ItemID).
					Int64("quantity", it.Quantity).
					Msg("released stock discarded: item no longer exists")
				continue
			}
			if err != nil {
				return false, err
			}
		}
		return true, nil
	})
}

// 共通部分：ロード → 合法性チェック → 条件付きUPDATE → 明細を付けて返す
func (u *OrderUsecase) transition(
	ctx context.Context,
	orderID string,
	check func(o model.Order) error,
	apply func(ctx context.Context, r repo.TxRepos, o *model.Order) (bool, error),
) (OrderOutput, error) {
	if orderID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := check(o); err != nil {
			return err
		}

		ok, err := apply(ctx, r, &o)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			// チェック後に誰かが先に遷移させた
			return NewHTTPError(http.StatusConflict, "conflict")
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
