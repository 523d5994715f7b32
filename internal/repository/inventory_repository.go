package repository

import "context"

// 在庫台帳。itemsテーブルのinventory列が唯一の正。
type InventoryRepository interface {
	// 在庫が足りるときだけ原子的に減算（予約）。足りなければfalse
	DecreaseStockIfEnough(ctx context.Context, itemID string, qty int64) (bool, error)

	// 在庫戻し（キャンセル）。商品が消えていたらErrNotFound
	IncreaseStock(ctx context.Context, itemID string, qty int64) error
}
