// Package reactor provides the event-loop side of the mailbox's dual
// consumer model: wakers that let a cooperative task suspend without
// occupying its thread, signalable from any goroutine, resumed by a
// dispatch loop.
package reactor

import (
	"sync"

	"github.com/Workiva/go-datastructures/queue"

	"github.com/stagelight/mailroom/log"
)

// Loop owns a set of wakers and resumes their suspended tasks. Signals
// arrive from arbitrary goroutines on the ready queue; the loop goroutine
// drains it and completes each waker's pending wake.
type Loop struct {
	ready    *queue.Queue
	mu       sync.Mutex
	wakers   map[*Waker]struct{}
	stopOnce sync.Once
	logger   log.Logger
}

// Option configures a Loop at construction.
type Option func(*Loop)

// WithLogger overrides the loop's logger.
func WithLogger(logger log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a loop and starts its dispatch goroutine.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		ready:  queue.New(16),
		wakers: make(map[*Waker]struct{}),
		logger: log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(l)
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for {
		items, err := l.ready.Get(1)
		if err != nil {
			// Queue disposed; the loop was stopped.
			return
		}
		for _, item := range items {
			item.(*Waker).deliver()
		}
	}
}

// NewWaker registers a fresh waker with the loop. The waker stays usable
// until its own Cleanup or until the loop stops.
func (l *Loop) NewWaker() *Waker {
	w := &Waker{
		loop: l,
		wake: make(chan struct{}, 1),
		dead: make(chan struct{}),
	}
	l.mu.Lock()
	l.wakers[w] = struct{}{}
	l.mu.Unlock()
	return w
}

func (l *Loop) forget(w *Waker) {
	l.mu.Lock()
	delete(l.wakers, w)
	l.mu.Unlock()
}

// Stop shuts the dispatch loop down and kills every registered waker, so
// tasks parked on them resume with a dead-waker error instead of hanging.
// Idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.ready.Dispose()
		l.mu.Lock()
		wakers := make([]*Waker, 0, len(l.wakers))
		for w := range l.wakers {
			wakers = append(wakers, w)
		}
		l.mu.Unlock()
		for _, w := range wakers {
			l.logger.Debugf("reactor: killing waker on loop stop")
			w.Cleanup()
		}
	})
}
