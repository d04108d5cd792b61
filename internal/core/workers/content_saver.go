package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

const (
	DefaultSaveDelay = 300 * time.Millisecond

	queueSize    = 100
	flushTimeout = 5 * time.Second
)

type ContentWriter interface {
	SetContent(ctx context.Context, week domain.WeekID, day domain.DayIndex, block string, content string) error
}

// ContentEdit is one pending free-text change of a slot.
type ContentEdit struct {
	Week    domain.WeekID
	Day     domain.DayIndex
	Block   string
	Content string
}

func (e ContentEdit) key() string {
	return e.Week.String() + "/" + domain.SlotID(e.Day, e.Block)
}

// ContentSaver debounces slot text edits: every edit restarts the delay, and when it elapses the
// latest text of each touched slot is written once.
type ContentSaver struct {
	repo   ContentWriter
	delay  time.Duration
	logger *zap.Logger

	jobs    chan ContentEdit
	flushes chan chan error
	done    chan struct{}

	// mu guards stopped; senders on jobs hold it for reading.
	mu      sync.RWMutex
	stopped bool
}

func NewContentSaver(repo ContentWriter, delay time.Duration, logger *zap.Logger) *ContentSaver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentSaver{
		repo:    repo,
		delay:   delay,
		logger:  logger.Named("content_saver"),
		jobs:    make(chan ContentEdit, queueSize),
		flushes: make(chan chan error),
		done:    make(chan struct{}),
	}
}

// Start runs the saver until ctx is cancelled. Pending edits are written before Done is closed.
func (w *ContentSaver) Start(ctx context.Context) {
	go w.run(ctx)
}

// Done is closed once the saver has stopped and flushed.
func (w *ContentSaver) Done() <-chan struct{} {
	return w.done
}

// Enqueue schedules an edit. When the queue is full the edit is written synchronously instead of
// being dropped.
func (w *ContentSaver) Enqueue(ctx context.Context, edit ContentEdit) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		return w.repo.SetContent(ctx, edit.Week, edit.Day, edit.Block, edit.Content)
	}

	select {
	case w.jobs <- edit:
		return nil
	default:
		w.logger.Warn("queue full, writing synchronously",
			zap.Stringer("week", edit.Week),
			zap.String("slot", domain.SlotID(edit.Day, edit.Block)),
		)
		return w.repo.SetContent(ctx, edit.Week, edit.Day, edit.Block, edit.Content)
	}
}

// Flush writes every pending edit now and waits for the result.
func (w *ContentSaver) Flush(ctx context.Context) error {
	reply := make(chan error, 1)
	select {
	case w.flushes <- reply:
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *ContentSaver) run(ctx context.Context) {
	defer close(w.done)

	w.logger.Info("started", zap.Duration("delay", w.delay))

	pending := make(map[string]ContentEdit)
	// Idle until the first edit arms it.
	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case edit := <-w.jobs:
			pending[edit.key()] = edit
			timer.Reset(w.delay)

		case <-timer.C:
			_ = w.write(ctx, pending)
			pending = make(map[string]ContentEdit)

		case reply := <-w.flushes:
			w.drain(pending)
			reply <- w.write(ctx, pending)
			pending = make(map[string]ContentEdit)

		case <-ctx.Done():
			w.stop(ctx, pending)
			w.logger.Info("stopped")
			return
		}
	}
}

// stop closes the queue to new edits and writes what is pending. Enqueue blocks until the final
// write is done, so a later edit of the same slot cannot be overwritten by it.
func (w *ContentSaver) stop(ctx context.Context, pending map[string]ContentEdit) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopped = true
	w.drain(pending)

	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()
	_ = w.write(flushCtx, pending)
}

// drain moves edits still sitting in the queue into pending.
func (w *ContentSaver) drain(pending map[string]ContentEdit) {
	for {
		select {
		case edit := <-w.jobs:
			pending[edit.key()] = edit
		default:
			return
		}
	}
}

func (w *ContentSaver) write(ctx context.Context, pending map[string]ContentEdit) error {
	var errs []error
	for _, edit := range pending {
		if err := w.repo.SetContent(ctx, edit.Week, edit.Day, edit.Block, edit.Content); err != nil {
			w.logger.Error("failed to save slot content",
				zap.Stringer("week", edit.Week),
				zap.String("slot", domain.SlotID(edit.Day, edit.Block)),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	if len(pending) > 0 {
		w.logger.Debug("slot content saved", zap.Int("slots", len(pending)), zap.Int("failed", len(errs)))
	}
	return errors.Join(errs...)
}
