package catalog

import (
	"fmt"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
)

// SeedDemo はデモ用の上映回ジオメトリを登録する
// 映画館ごとにホールの大きさが異なり、館内の全ホールは同一ジオメトリとする
func SeedDemo(c *StaticCatalog) error {
	const cinemas = 5
	const sessionsPerCinema = 4

	for cinema := 1; cinema <= cinemas; cinema++ {
		rows := 3 + 5*cinema
		seatsPerRow := 10 + 5*(cinema-1)
		for session := 1; session <= sessionsPerCinema; session++ {
			id := fmt.Sprintf("showtime-%d-%d", cinema, session)
			if err := c.Register(showtime.New(id, rows, seatsPerRow)); err != nil {
				return err
			}
		}
	}
	return nil
}
