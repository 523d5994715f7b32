package usecase

import (
	"crypto/rand"
	"time"
)

// 注文IDのランダム部分。紛らわしい文字は気にしない（一意性はPKが担保する）
const orderIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// 日付プレフィックス＋ランダム6文字（例: 20221212ED43w2）
func newOrderID(now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/randが失敗する環境では動かさない
		panic(err)
	}
	for i := range buf {
		buf[i] = orderIDLetters[int(buf[i])%len(orderIDLetters)]
	}
	return now.Format("20060102") + string(buf)
}
