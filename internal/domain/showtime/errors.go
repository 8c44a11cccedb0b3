package showtime

import "errors"

// Showtime ドメインのエラー定義
var (
	ErrShowtimeNotFound   = errors.New("上映回が見つかりません")
	ErrShowtimeIDRequired = errors.New("上映回IDは必須です")
	ErrInvalidRows        = errors.New("行数は1以上である必要があります")
	ErrInvalidSeatsPerRow = errors.New("1行あたりの座席数は1以上である必要があります")
	ErrSeatOutOfBounds    = errors.New("座席が座席表の範囲外です")
)
