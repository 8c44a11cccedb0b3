package seat

import "fmt"

// Seat は座席グリッド上の1座席を表す値オブジェクト
// 行番号と座席番号が一致する座席は同一とみなす
type Seat struct {
	Row    int
	Number int
}

// New は新しい座席を作成する
func New(row, number int) Seat {
	return Seat{Row: row, Number: number}
}

// Validate は座席の検証を行う
func (s Seat) Validate() error {
	if s.Row < 1 {
		return ErrInvalidRow
	}
	if s.Number < 1 {
		return ErrInvalidNumber
	}
	return nil
}

// Equal は同じ座席かを返す
func (s Seat) Equal(other Seat) bool {
	return s.Row == other.Row && s.Number == other.Number
}

// String は "行-番号" 形式の表記を返す
func (s Seat) String() string {
	return fmt.Sprintf("%d-%d", s.Row, s.Number)
}

// ValidateSet は予約リクエストの座席集合を検証する
// 空でないこと、各座席が正の座標を持つこと、重複がないことを確認する
func ValidateSet(seats []Seat) error {
	if len(seats) == 0 {
		return ErrSeatsRequired
	}
	seen := make(map[Seat]struct{}, len(seats))
	for _, s := range seats {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, ok := seen[s]; ok {
			return ErrDuplicateSeat
		}
		seen[s] = struct{}{}
	}
	return nil
}
