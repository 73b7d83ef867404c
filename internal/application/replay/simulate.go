package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/spaceshooter/internal/application/game"
	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/application/session"
)

// Simulate plays a replay headless from a fresh session and returns the
// final session. A quit request ends playback early without error.
func Simulate(data ReplayData) (*session.Session, error) {
	sess := session.New(data.Seed, data.ShipW, data.ShipH)
	g := game.NewDefault(sess, nil)
	rep := NewReplayer(data)

	for {
		dt, ok := rep.Next()
		if !ok {
			return sess, nil
		}
		if err := g.Update(dt, rep); err != nil {
			if errors.Is(err, scene.ErrQuit) {
				return sess, nil
			}
			return sess, fmt.Errorf("frame %d: %w", rep.CurrentFrame()-1, err)
		}
	}
}
