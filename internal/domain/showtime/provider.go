package showtime

import "context"

// GeometryProvider は上映回の座席ジオメトリを提供するインターフェース
// カタログ（映画・映画館・上映回の管理）は外部コラボレーターであり、
// 予約コアはこのインターフェースを通じて読み取りのみ行う
type GeometryProvider interface {
	// GetByID はIDから上映回ジオメトリを取得する
	// 存在しない場合は ErrShowtimeNotFound を返す
	GetByID(ctx context.Context, id string) (*Showtime, error)
}
