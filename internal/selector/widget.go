package selector

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/calcio/internal/metrics"
)

// Options tune the display transition.
type Options struct {
	// FrameInterval is the delay before the entrance animation starts.
	FrameInterval time.Duration
	// EnterDuration is how long the entrance animation runs.
	EnterDuration time.Duration
}

// Widget tracks the selected item and the display phase of its detail view.
//
// Select hides the detail view, shows it again with its entrance animation on the
// next frame, and settles it once the animation has run. Callbacks scheduled for a
// selection that has since been replaced or cleared are ignored.
type Widget struct {
	mu         sync.RWMutex
	items      []Item
	selected   int
	phase      Phase
	generation uint64

	player    Player
	scheduler Scheduler
	metrics   metrics.Metrics
	opts      Options
}

// New creates a widget over items with nothing selected.
func New(items []Item, player Player, scheduler Scheduler, m metrics.Metrics, opts Options) *Widget {
	return &Widget{
		items:     slices.Clone(items),
		selected:  -1,
		phase:     PhaseHidden,
		player:    player,
		scheduler: scheduler,
		metrics:   m,
		opts:      opts,
	}
}

// Items returns the selectable items.
func (w *Widget) Items() []Item {
	return slices.Clone(w.items)
}

// Find looks an item up by name, ignoring case.
func (w *Widget) Find(name string) (Item, bool) {
	for _, item := range w.items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return Item{}, false
}

// Select makes item the current selection, restarts the detail view transition
// and starts playing the item's sound without waiting for it.
func (w *Widget) Select(item Item) error {
	idx := slices.Index(w.items, item)
	if idx < 0 {
		return fmt.Errorf("select %q: %w", item.Name, ErrUnknownItem)
	}

	w.mu.Lock()
	w.selected = idx
	w.phase = PhaseHidden
	w.generation++
	gen := w.generation
	w.mu.Unlock()

	log.Info("Item selected", "item", item.Name)
	w.metrics.IncSelections()

	w.scheduler.After(w.opts.FrameInterval, func() {
		w.enter(gen)
	})

	w.play(item)
	return nil
}

// Deselect clears the selection and hides the detail view.
func (w *Widget) Deselect() {
	w.mu.Lock()
	w.selected = -1
	w.phase = PhaseHidden
	w.generation++
	w.mu.Unlock()

	log.Info("Selection cleared")
	w.metrics.IncDeselections()
}

// Selected returns the current selection, if any.
func (w *Widget) Selected() (Item, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.selected < 0 {
		return Item{}, false
	}
	return w.items[w.selected], true
}

// Status returns a snapshot of the widget.
func (w *Widget) Status() Status {
	w.mu.RLock()
	defer w.mu.RUnlock()

	status := Status{Items: slices.Clone(w.items), Phase: w.phase}
	if w.selected >= 0 {
		item := w.items[w.selected]
		status.Selected = &item
	}
	return status
}

// Frame reports that a frame of the detail view has been drawn. A selection still
// waiting for its first frame starts its entrance animation now instead of when
// the frame timer fires.
func (w *Widget) Frame() {
	w.mu.RLock()
	pending := w.selected >= 0 && w.phase == PhaseHidden
	gen := w.generation
	w.mu.RUnlock()

	if pending {
		w.enter(gen)
	}
}

// enter starts the entrance animation of selection gen and schedules its end.
// Only the first of the frame timer and Frame gets through.
func (w *Widget) enter(gen uint64) {
	if !w.advance(gen, PhaseHidden, PhaseEntering) {
		return
	}
	w.scheduler.After(w.opts.EnterDuration, func() {
		w.advance(gen, PhaseEntering, PhaseShown)
	})
}

// advance moves the display from one phase to the next if gen is still the
// current selection and the display is still in from.
func (w *Widget) advance(gen uint64, from, to Phase) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		log.Debug("Dropping stale display transition", "phase", to)
		return false
	}
	if w.phase != from {
		return false
	}
	w.phase = to
	return true
}

// play hands the item's sound to the player. A Queuer takes it before Select
// returns; any other player runs on a new goroutine that nothing joins or cancels,
// so a later selection starts another playback alongside it.
func (w *Widget) play(item Item) {
	p := Playback{ID: uuid.NewString(), Item: item.Name, Sound: item.Sound}
	w.metrics.IncPlaybacksStarted()
	log.Debug("Starting playback", "playback_id", p.ID, "sound", p.Sound)

	if q, ok := w.player.(Queuer); ok {
		q.Queue(p)
		return
	}

	go func() {
		if err := w.player.Play(context.Background(), p); err != nil {
			log.Error("Playback failed", "playback_id", p.ID, "sound", p.Sound, "error", err)
			w.metrics.IncPlaybacksFailed()
		}
	}()
}
