package reservation

import "errors"

// Reservation ドメインのエラー定義
var (
	ErrReservationNotFound    = errors.New("予約が見つかりません")
	ErrReservationAlreadyPaid = errors.New("予約は既に支払い済みです")
	ErrSeatConflict           = errors.New("座席は既に予約されています")
	ErrShowtimeIDRequired     = errors.New("上映回IDは必須です")
	ErrUserIDRequired         = errors.New("ユーザーIDは必須です")
	ErrSeatsRequired          = errors.New("座席は必須です")

	// ErrStoreCorrupted はストア内部の不変条件違反を示す
	// 発生した場合はバグであり、呼び出し側で回復してはならない
	ErrStoreCorrupted = errors.New("予約ストアの内部状態が不正です")
)
