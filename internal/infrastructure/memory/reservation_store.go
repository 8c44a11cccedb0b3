package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"
)

// ReservationStore はインメモリの予約ストア
// 全ての変更を単一のミューテックスで直列化することで、
// 競合確認と挿入の原子性（勝者は高々1件）を保証する
type ReservationStore struct {
	mu           sync.RWMutex
	reservations map[string]*reservation.Reservation
	// seatIndex は showtimeID → 座席 → 予約ID の索引
	// pending / paid の予約が保持する座席のみを含む
	seatIndex map[string]map[seat.Seat]string
	now       func() time.Time
}

// Option は ReservationStore の設定オプション
type Option func(*ReservationStore)

// WithNow は現在時刻の取得関数を差し替える（テスト用）
func WithNow(now func() time.Time) Option {
	return func(s *ReservationStore) {
		s.now = now
	}
}

// NewReservationStore は新しいインメモリ予約ストアを作成する
func NewReservationStore(opts ...Option) *ReservationStore {
	s := &ReservationStore{
		reservations: make(map[string]*reservation.Reservation),
		seatIndex:    make(map[string]map[seat.Seat]string),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TryReserve は座席の競合確認と予約の挿入を単一のクリティカルセクションで行う
func (s *ReservationStore) TryReserve(ctx context.Context, showtimeID, userID string, seats []seat.Seat) (*reservation.Reservation, error) {
	if err := seat.ValidateSet(seats); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := reservation.New(showtimeID, userID, seats, s.now())
	if err := res.Validate(); err != nil {
		return nil, err
	}

	index := s.seatIndex[showtimeID]
	for _, st := range seats {
		if _, held := index[st]; held {
			return nil, reservation.ErrSeatConflict
		}
	}

	res.ID = uuid.New().String()
	s.reservations[res.ID] = res
	if index == nil {
		index = make(map[seat.Seat]string)
		s.seatIndex[showtimeID] = index
	}
	for _, st := range seats {
		index[st] = res.ID
	}

	return res.Clone(), nil
}

// MarkPaid は支払い待ちの予約を支払い済みに遷移させる
func (s *ReservationStore) MarkPaid(ctx context.Context, id string) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	if err := res.MarkPaid(); err != nil {
		return nil, err
	}
	return res.Clone(), nil
}

// DeleteExpired は期限切れの支払い待ち予約を削除する
// 支払い済みの予約は経過時間に関わらず削除しない
func (s *ReservationStore) DeleteExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, res := range s.reservations {
		if !res.IsExpiredAt(now, ttl) {
			continue
		}
		if err := s.removeLocked(id, res); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// removeLocked は予約と座席索引のエントリを削除する
// 索引が予約と食い違っている場合は不変条件違反として報告する
func (s *ReservationStore) removeLocked(id string, res *reservation.Reservation) error {
	index := s.seatIndex[res.ShowtimeID]
	for _, st := range res.Seats {
		owner, ok := index[st]
		if !ok || owner != id {
			return reservation.ErrStoreCorrupted
		}
		delete(index, st)
	}
	if len(index) == 0 {
		delete(s.seatIndex, res.ShowtimeID)
	}
	delete(s.reservations, id)
	return nil
}

// FindByShowtime は上映回の予約一覧を作成日時順に返す
func (s *ReservationStore) FindByShowtime(ctx context.Context, showtimeID string) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*reservation.Reservation
	for _, res := range s.reservations {
		if res.ShowtimeID == showtimeID {
			result = append(result, res.Clone())
		}
	}
	sortByCreatedAt(result)
	return result, nil
}

// FindByUser はユーザーの予約一覧を作成日時順に返す
func (s *ReservationStore) FindByUser(ctx context.Context, userID string) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*reservation.Reservation
	for _, res := range s.reservations {
		if res.UserID == userID {
			result = append(result, res.Clone())
		}
	}
	sortByCreatedAt(result)
	return result, nil
}

func sortByCreatedAt(reservations []*reservation.Reservation) {
	sort.Slice(reservations, func(i, j int) bool {
		if reservations[i].CreatedAt.Equal(reservations[j].CreatedAt) {
			return reservations[i].ID < reservations[j].ID
		}
		return reservations[i].CreatedAt.Before(reservations[j].CreatedAt)
	})
}

var _ reservation.Store = (*ReservationStore)(nil)
