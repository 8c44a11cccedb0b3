package seat

import "errors"

// Seat ドメインのエラー定義
var (
	ErrInvalidRow    = errors.New("行番号は1以上である必要があります")
	ErrInvalidNumber = errors.New("座席番号は1以上である必要があります")
	ErrSeatsRequired = errors.New("座席が選択されていません")
	ErrDuplicateSeat = errors.New("同じ座席が重複して指定されています")
)
