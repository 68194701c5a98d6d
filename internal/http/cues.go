package http

import (
	"context"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/calcio/internal/selector"
)

var _ selector.Queuer = (*CueBoard)(nil)

// CueBoard is the selector's Player when served over HTTP. The server cannot play
// sound itself, so each playback becomes a cue that the next page render turns into
// an autoplaying audio element. Cues are consumed once.
type CueBoard struct {
	mu      sync.Mutex
	pending []selector.Playback
}

func NewCueBoard() *CueBoard {
	return &CueBoard{}
}

// Play queues p. It never blocks.
func (c *CueBoard) Play(ctx context.Context, p selector.Playback) error {
	c.Queue(p)
	return nil
}

// Queue adds p to the cues of the next render. The widget calls it before Select
// returns, so the page rendered after a selection carries its cue.
func (c *CueBoard) Queue(p selector.Playback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, p)
	log.Debug("Queued audio cue", "playback_id", p.ID, "sound", p.Sound)
}

// Take returns the pending cues, oldest first, and clears them.
func (c *CueBoard) Take() []selector.Playback {
	c.mu.Lock()
	defer c.mu.Unlock()
	cues := slices.Clone(c.pending)
	c.pending = nil
	return cues
}
