package selector

import (
	"context"
	"time"
)

// Player plays a sound. Implementations may block until playback ends; the
// widget calls Play from its own goroutine and never waits for it.
type Player interface {
	Play(ctx context.Context, p Playback) error
}

// Scheduler runs fn once after d. It stands in for the rendering frame clock.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Queuer is a Player that only records playbacks for later delivery and never
// blocks. The widget queues on it before Select returns, so the playback is
// visible to the caller in order with the selection.
type Queuer interface {
	Player
	Queue(p Playback)
}
