package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"
)

// uniqueViolation はPostgreSQLの一意制約違反コード
const uniqueViolation = "23505"

type reservationRow struct {
	ID         string    `db:"id"`
	ShowtimeID string    `db:"showtime_id"`
	UserID     string    `db:"user_id"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

type seatRow struct {
	Row    int `db:"seat_row"`
	Number int `db:"seat_number"`
}

// ReservationStore はPostgreSQLを使用した予約ストア
// 座席の重複保持は reservation_seats の一意制約で排除するため、
// 競合する挿入はコミット時に高々1件しか成功しない
type ReservationStore struct {
	db *sqlx.DB
}

func NewReservationStore(db *sqlx.DB) *ReservationStore {
	return &ReservationStore{db: db}
}

// TryReserve は予約と座席行を1トランザクションで挿入する
// 一意制約違反は ErrSeatConflict に写像する
func (r *ReservationStore) TryReserve(ctx context.Context, showtimeID, userID string, seats []seat.Seat) (*reservation.Reservation, error) {
	if err := seat.ValidateSet(seats); err != nil {
		return nil, err
	}

	res := reservation.New(showtimeID, userID, seats, time.Now())
	if err := res.Validate(); err != nil {
		return nil, err
	}
	res.ID = uuid.New().String()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO reservations (id, showtime_id, user_id, status, created_at) VALUES ($1, $2, $3, $4, $5)`,
		res.ID, res.ShowtimeID, res.UserID, string(res.Status), res.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("予約作成に失敗: %w", err)
	}

	for _, st := range seats {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO reservation_seats (reservation_id, showtime_id, seat_row, seat_number) VALUES ($1, $2, $3, $4)`,
			res.ID, res.ShowtimeID, st.Row, st.Number,
		); err != nil {
			if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == uniqueViolation {
				return nil, reservation.ErrSeatConflict
			}
			return nil, fmt.Errorf("予約座席の登録に失敗: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == uniqueViolation {
			return nil, reservation.ErrSeatConflict
		}
		return nil, fmt.Errorf("コミットに失敗: %w", err)
	}
	return res, nil
}

// MarkPaid は支払い待ちの予約を支払い済みに更新する
// 条件付きUPDATEにより、掃除との競合はどちらか一方の結果に確定する
func (r *ReservationStore) MarkPaid(ctx context.Context, id string) (*reservation.Reservation, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = $1 WHERE id = $2 AND status = $3`,
		string(reservation.StatusPaid), id, string(reservation.StatusPending),
	)
	if err != nil {
		return nil, fmt.Errorf("予約更新に失敗: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("更新結果の取得に失敗: %w", err)
	}
	if rows == 0 {
		// 更新できなかった理由を判定する（存在しない or 支払い済み）
		var status string
		err := r.db.GetContext(ctx, &status, `SELECT status FROM reservations WHERE id = $1`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reservation.ErrReservationNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("予約取得に失敗: %w", err)
		}
		if status == string(reservation.StatusPaid) {
			return nil, reservation.ErrReservationAlreadyPaid
		}
		return nil, reservation.ErrReservationNotFound
	}
	return r.getByID(ctx, id)
}

// DeleteExpired は createdAt + ttl が now より前の支払い待ち予約を削除する
// 座席行は外部キーのカスケードで一緒に消える
func (r *ReservationStore) DeleteExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error) {
	cutoff := now.Add(-ttl)
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM reservations WHERE status = $1 AND created_at < $2`,
		string(reservation.StatusPending), cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("期限切れ予約の削除に失敗: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("削除結果の取得に失敗: %w", err)
	}
	return int(rows), nil
}

// FindByShowtime は上映回の予約一覧を取得する
func (r *ReservationStore) FindByShowtime(ctx context.Context, showtimeID string) ([]*reservation.Reservation, error) {
	var rows []reservationRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT id, showtime_id, user_id, status, created_at FROM reservations WHERE showtime_id = $1 ORDER BY created_at`,
		showtimeID,
	); err != nil {
		return nil, fmt.Errorf("予約一覧取得に失敗: %w", err)
	}
	return r.toEntities(ctx, rows)
}

// FindByUser はユーザーの予約一覧を取得する
func (r *ReservationStore) FindByUser(ctx context.Context, userID string) ([]*reservation.Reservation, error) {
	var rows []reservationRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT id, showtime_id, user_id, status, created_at FROM reservations WHERE user_id = $1 ORDER BY created_at`,
		userID,
	); err != nil {
		return nil, fmt.Errorf("予約一覧取得に失敗: %w", err)
	}
	return r.toEntities(ctx, rows)
}

func (r *ReservationStore) getByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	var row reservationRow
	if err := r.db.GetContext(ctx, &row,
		`SELECT id, showtime_id, user_id, status, created_at FROM reservations WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reservation.ErrReservationNotFound
		}
		return nil, fmt.Errorf("予約取得に失敗: %w", err)
	}
	seats, err := r.getSeats(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEntity(&row, seats), nil
}

func (r *ReservationStore) getSeats(ctx context.Context, reservationID string) ([]seat.Seat, error) {
	var rows []seatRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT seat_row, seat_number FROM reservation_seats WHERE reservation_id = $1 ORDER BY seat_row, seat_number`,
		reservationID,
	); err != nil {
		return nil, fmt.Errorf("予約座席の取得に失敗: %w", err)
	}
	seats := make([]seat.Seat, len(rows))
	for i, row := range rows {
		seats[i] = seat.New(row.Row, row.Number)
	}
	return seats, nil
}

func (r *ReservationStore) toEntities(ctx context.Context, rows []reservationRow) ([]*reservation.Reservation, error) {
	result := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		seats, err := r.getSeats(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		result[i] = toEntity(&row, seats)
	}
	return result, nil
}

func toEntity(row *reservationRow, seats []seat.Seat) *reservation.Reservation {
	return &reservation.Reservation{
		ID:         row.ID,
		ShowtimeID: row.ShowtimeID,
		UserID:     row.UserID,
		Seats:      seats,
		Status:     reservation.Status(row.Status),
		CreatedAt:  row.CreatedAt,
	}
}

var _ reservation.Store = (*ReservationStore)(nil)
