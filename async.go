package lazy

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Scheduler is the "defer a callback" primitive §4.H and §1 describe
// as an external collaborator: something that can run fn later
// without the caller blocking for it. intervalScheduler and
// immediateScheduler are this module's two concrete resolutions of
// it, matching §4.H's "schedule after interval ms" and "host's
// highest-priority deferred callback, falling back to a zero-delay
// timer" cases.
type Scheduler interface {
	Schedule(fn func())
}

// intervalScheduler paces steps interval apart using time.AfterFunc.
type intervalScheduler struct{ interval time.Duration }

func (s intervalScheduler) Schedule(fn func()) { time.AfterFunc(s.interval, fn) }

// immediateScheduler runs fn as soon as the runtime schedules it, via
// a zero-delay timer — Go has no single universally-"highest
// priority" deferred-callback primitive the way a JS event loop's
// microtask queue does, so a zero-delay timer is this module's
// best-effort stand-in, exactly the fallback §4.H names explicitly.
type immediateScheduler struct{}

func (immediateScheduler) Schedule(fn func()) { time.AfterFunc(0, fn) }

// asyncDriver is the Async node of §4.A/§4.H: it re-expresses its
// parent's iteration through a Scheduler, one step at a time, so that
// Each never invokes the visitor synchronously in its own call stack
// (§5, §8 invariant 12).
type asyncDriver[T any] struct {
	parent    Sequence[T]
	scheduler Scheduler
	log       *zerolog.Logger
}

// isAsync marks asyncDriver so Async can detect and reject
// double-wrapping (§4.H: "wrapping an already-async sequence in async
// again is an error"; §7 classifies this as a Misuse failing
// synchronously at construction).
func (asyncDriver[T]) isAsync() bool { return true }

type asyncMarker interface{ isAsync() bool }

// Async wraps s so that its iteration proceeds through the scheduler
// primitive rather than synchronously. With no interval argument it
// uses the best-effort immediate scheduler; with one, steps are paced
// interval apart. Use AsyncWithLogger to attach a logger.
func (s Seq[T]) Async(interval ...time.Duration) Seq[T] {
	if _, ok := s.core.(asyncMarker); ok {
		invariant(false, ErrAlreadyAsync)
	}
	var sched Scheduler = immediateScheduler{}
	if len(interval) > 0 {
		sched = intervalScheduler{interval: interval[0]}
	}
	return Of[T](&asyncDriver[T]{parent: s.core, scheduler: sched})
}

// AsyncWithLogger is Async with an attached structured logger. If log
// is non-nil, each run logs one debug line when it starts and one when
// it ends (exhausted or stopped by the visitor), tagged with a per-run
// correlation ID so concurrent runs over the same pipeline are
// distinguishable.
func (s Seq[T]) AsyncWithLogger(log *zerolog.Logger, interval ...time.Duration) Seq[T] {
	wrapped := s.Async(interval...)
	wrapped.core.(*asyncDriver[T]).log = log
	return wrapped
}

func (a *asyncDriver[T]) Each(v Visitor[T]) {
	runID := uuid.New()
	ctx := backgroundCtx()
	it := GetIterator[T](a.parent)

	if a.log != nil {
		a.log.Debug().Str("run_id", runID.String()).Msg("async sequence starting")
	}

	done := make(chan struct{})
	idx := 0

	var step func()
	step = func() {
		if !it.Next(ctx) {
			_ = it.Close()
			if a.log != nil {
				a.log.Debug().Str("run_id", runID.String()).Msg("async sequence exhausted")
			}
			close(done)
			return
		}
		value := it.Value()
		cont := v(value, idx)
		idx++
		if !cont {
			_ = it.Close()
			if a.log != nil {
				a.log.Debug().Str("run_id", runID.String()).Msg("async sequence stopped by visitor")
			}
			close(done)
			return
		}
		a.scheduler.Schedule(step)
	}

	a.scheduler.Schedule(step)
	<-done
}
