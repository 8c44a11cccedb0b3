package showtime

import "github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"

// Showtime は上映回の座席ジオメトリを表す
// ホールは長方形で、全ての行に同じ数の座席があるものとする
type Showtime struct {
	ID          string
	Rows        int
	SeatsPerRow int
}

// New は新しい上映回ジオメトリを作成する
func New(id string, rows, seatsPerRow int) *Showtime {
	return &Showtime{ID: id, Rows: rows, SeatsPerRow: seatsPerRow}
}

// Validate は上映回ジオメトリの検証を行う
func (s *Showtime) Validate() error {
	if s.ID == "" {
		return ErrShowtimeIDRequired
	}
	if s.Rows < 1 {
		return ErrInvalidRows
	}
	if s.SeatsPerRow < 1 {
		return ErrInvalidSeatsPerRow
	}
	return nil
}

// Contains は座席がこの上映回の座席表の範囲内かを返す
func (s *Showtime) Contains(st seat.Seat) bool {
	return st.Row >= 1 && st.Row <= s.Rows &&
		st.Number >= 1 && st.Number <= s.SeatsPerRow
}

// Capacity は上映回の総座席数を返す
func (s *Showtime) Capacity() int {
	return s.Rows * s.SeatsPerRow
}
