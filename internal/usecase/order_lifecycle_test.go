package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testOrderID = "20221212ED43w2"

func placedOrder(createAt time.Time) model.Order {
	return model.Order{
		ID:          testOrderID,
		UserID:      testUserID,
		StoreID:     testStoreID,
		ShippingFee: 20,
		CreateAt:    createAt,
	}
}

func TestMarkPaid_Success(t *testing.T) {
	base := time.Date(2022, 12, 12, 10, 0, 0, 0, time.UTC)
	env := newOrderTestEnv(t, base)

	env.orders.On("FindByID", mock.Anything, testOrderID).Return(placedOrder(base.Add(-time.Hour)), nil)
	env.orders.On("SetPaidAt", mock.Anything, testOrderID, base).Return(true, nil)
	env.orderItems.On("ListByOrderID", mock.Anything, testOrderID).Return([]model.OrderItem{}, nil)

	out, err := env.uc.MarkPaid(context.Background(), testOrderID)

	assert.NoError(t, err)
	if assert.NotNil(t, out.PaidAt) {
		assert.Equal(t, base, *out.PaidAt)
	}
	assert.Nil(t, out.ShippedAt)
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())
	paidAt := time.Now()

	o := placedOrder(paidAt.Add(-time.Hour))
	o.PaidAt = &paidAt
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil)

	_, err := env.uc.MarkPaid(context.Background(), testOrderID)

	assertHTTPError(t, err, http.StatusConflict, "already paid")
	env.orders.AssertNotCalled(t, "SetPaidAt", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkPaid_Cancelled(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())

	o := placedOrder(time.Now())
	o.IsCancelled = true
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil)

	_, err := env.uc.MarkPaid(context.Background(), testOrderID)

	assertHTTPError(t, err, http.StatusConflict, "order cancelled")
}

func TestMarkShipped_NotPaid(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())

	env.orders.On("FindByID", mock.Anything, testOrderID).Return(placedOrder(time.Now()), nil)

	_, err := env.uc.MarkShipped(context.Background(), testOrderID)

	assertHTTPError(t, err, http.StatusConflict, "not paid yet")
	env.orders.AssertNotCalled(t, "SetShippedAt", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkReceived_NotShipped(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())
	paidAt := time.Now()

	o := placedOrder(paidAt.Add(-time.Hour))
	o.PaidAt = &paidAt
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil)

	_, err := env.uc.MarkReceived(context.Background(), testOrderID)

	assertHTTPError(t, err, http.StatusConflict, "not shipped yet")
}

func TestMarkReviewed_NotReceived(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())
	at := time.Now()

	o := placedOrder(at.Add(-time.Hour))
	o.PaidAt = &at
	o.ShippedAt = &at
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil)

	_, err := env.uc.MarkReviewed(context.Background(), testOrderID)

	assertHTTPError(t, err, http.StatusConflict, "not received yet")
}

// 正常系を最後まで流して、各タイムスタンプが単調に進むことを見る
func TestLifecycle_MonotonicTimestamps(t *testing.T) {
	base := time.Date(2022, 12, 12, 10, 0, 0, 0, time.UTC)
	env := newOrderTestEnv(t, base)
	ctx := context.Background()

	createAt := base.Add(-time.Hour)
	o := placedOrder(createAt)

	// FindByIDは呼ばれるたびに1つ前の遷移結果を返す
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil).Once()
	env.orders.On("SetPaidAt", mock.Anything, testOrderID, mock.AnythingOfType("time.Time")).Return(true, nil)
	env.orderItems.On("ListByOrderID", mock.Anything, testOrderID).Return([]model.OrderItem{}, nil)

	paid, err := env.uc.MarkPaid(ctx, testOrderID)
	assert.NoError(t, err)

	o.PaidAt = paid.PaidAt
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil).Once()
	env.orders.On("SetShippedAt", mock.Anything, testOrderID, mock.AnythingOfType("time.Time")).Return(true, nil)

	shipped, err := env.uc.MarkShipped(ctx, testOrderID)
	assert.NoError(t, err)

	o.ShippedAt = shipped.ShippedAt
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil).Once()
	env.orders.On("SetReceivedAt", mock.Anything, testOrderID, mock.AnythingOfType("time.Time")).Return(true, nil)

	received, err := env.uc.MarkReceived(ctx, testOrderID)
	assert.NoError(t, err)

	o.ReceivedAt = received.ReceivedAt
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil).Once()
	env.orders.On("SetReviewedAt", mock.Anything, testOrderID, mock.AnythingOfType("time.Time")).Return(true, nil)

	reviewed, err := env.uc.MarkReviewed(ctx, testOrderID)
	assert.NoError(t, err)

	// create <= paid <= shipped <= received <= reviewed
	assert.True(t, createAt.Before(*paid.PaidAt))
	assert.True(t, paid.PaidAt.Before(*shipped.ShippedAt))
	assert.True(t, shipped.ShippedAt.Before(*received.ReceivedAt))
	assert.True(t, received.ReceivedAt.Before(*reviewed.ReviewedAt))
}

func TestCancel_ReleasesStock(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())

	env.orders.On("FindByID", mock.Anything, testOrderID).Return(placedOrder(time.Now()), nil)
	env.orders.On("MarkCancelled", mock.Anything, testOrderID).Return(true, nil)
	env.orderItems.On("ListByOrderID", mock.Anything, testOrderID).Return([]model.OrderItem{
		{OrderID: testOrderID, ItemID: testItemA, Quantity: 5},
		{OrderID: testOrderID, ItemID: testItemB, Quantity: 10},
	}, nil)
	env.inventory.On("IncreaseStock", mock.Anything, testItemA, int64(5)).Return(nil)
	env.inventory.On("IncreaseStock", mock.Anything, testItemB, int64(10)).Return(nil)

	out, err := env.uc.Cancel(context.Background(), testOrderID)

	assert.NoError(t, err)
	assert.True(t, out.IsCancelled)

	// 明細の数量がそのまま戻る
	env.inventory.AssertCalled(t, "IncreaseStock", mock.Anything, testItemA, int64(5))
	env.inventory.AssertCalled(t, "IncreaseStock", mock.Anything, testItemB, int64(10))
}

func TestCancel_AfterShipped(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())
	at := time.Now()

	o := placedOrder(at.Add(-time.Hour))
	o.PaidAt = &at
	o.ShippedAt = &at
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil)

	_, err := env.uc.Cancel(context.Background(), testOrderID)

	assertHTTPError(t, err, http.StatusConflict, "cannot cancel shipped order")

	// 在庫には触らない
	env.orders.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
	env.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())

	o := placedOrder(time.Now())
	o.IsCancelled = true
	env.orders.On("FindByID", mock.Anything, testOrderID).Return(o, nil)

	_, err := env.uc.Cancel(context.Background(), testOrderID)

	assertHTTPError(t, err, http.StatusConflict, "already cancelled")
	env.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

// 商品が消えていても、キャンセル自体は成功して在庫だけ捨てられる
func TestCancel_DeletedItemStockDiscarded(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())

	env.orders.On("FindByID", mock.Anything, testOrderID).Return(placedOrder(time.Now()), nil)
	env.orders.On("MarkCancelled", mock.Anything, testOrderID).Return(true, nil)
	env.orderItems.On("ListByOrderID", mock.Anything, testOrderID).Return([]model.OrderItem{
		{OrderID: testOrderID, ItemID: testItemA, Quantity: 5},
		{OrderID: testOrderID, ItemID: testItemB, Quantity: 10},
	}, nil)
	env.inventory.On("IncreaseStock", mock.Anything, testItemA, int64(5)).Return(repo.ErrNotFound)
	env.inventory.On("IncreaseStock", mock.Anything, testItemB, int64(10)).Return(nil)

	out, err := env.uc.Cancel(context.Background(), testOrderID)

	assert.NoError(t, err)
	assert.True(t, out.IsCancelled)
	env.inventory.AssertCalled(t, "IncreaseStock", mock.Anything, testItemB, int64(10))
}

// チェックは通ったのに条件付きUPDATEが0行＝誰かが先に遷移させた
func TestTransition_LostRaceIsConflict(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())

	env.orders.On("FindByID", mock.Anything, testOrderID).Return(placedOrder(time.Now()), nil)
	env.orders.On("SetPaidAt", mock.Anything, testOrderID, mock.AnythingOfType("time.Time")).Return(false, nil)

	_, err := env.uc.MarkPaid(context.Background(), testOrderID)

	assertHTTPError(t, err, http.StatusConflict, "conflict")
}

func TestTransition_OrderNotFound(t *testing.T) {
	env := newOrderTestEnv(t, time.Now())

	env.orders.On("FindByID", mock.Anything, testOrderID).Return(model.Order{}, repo.ErrNotFound)

	_, err := env.uc.MarkPaid(context.Background(), testOrderID)
	assertHTTPError(t, err, http.StatusNotFound, "order not found")

	_, err = env.uc.Cancel(context.Background(), testOrderID)
	assertHTTPError(t, err, http.StatusNotFound, "order not found")
}
