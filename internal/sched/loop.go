// Package sched provides the primary execution context and background task helpers.
//
// The primary context is a single goroutine that owns all account mutation
// and user-facing side effects. It must never block on network or disk IO;
// blocking work runs on background workers which hand results back via
// NextTick.
package sched

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Loop is the single-threaded primary execution context.
type Loop struct {
	logger zerolog.Logger

	tasks chan func()
	quit  chan struct{}
	done  chan struct{}

	stopOnce sync.Once
	workers  sync.WaitGroup
}

// NewLoop returns a stopped loop; call Start to begin processing.
func NewLoop(logger zerolog.Logger) *Loop {
	return &Loop{
		logger: logger,
		tasks:  make(chan func(), 1024),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the primary context goroutine.
func (l *Loop) Start() {
	go l.run()
}

func (l *Loop) run() {
	defer close(l.done)

	for {
		select {
		case task := <-l.tasks:
			l.safeRun(task)
		case <-l.quit:
			// Drain whatever was queued before shutdown.
			for {
				select {
				case task := <-l.tasks:
					l.safeRun(task)
				default:
					return
				}
			}
		}
	}
}

func (l *Loop) safeRun(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().Interface("panic", r).Msg("task panicked on primary context")
		}
	}()

	task()
}

// NextTick queues the task for execution on the primary context.
// Tasks submitted after shutdown are dropped.
func (l *Loop) NextTick(task func()) {
	select {
	case <-l.quit:
	case l.tasks <- task:
	}
}

// Async runs the task on a background worker.
func (l *Loop) Async(task func()) {
	l.workers.Add(1)

	go func() {
		defer l.workers.Done()
		task()
	}()
}

// Repeat runs the task on a background worker every interval until the
// returned stop function is called or the loop shuts down.
// A non-positive interval disables the timer.
func (l *Loop) Repeat(interval time.Duration, task func()) (stop func()) {
	if interval <= 0 {
		return func() {}
	}

	cancel := make(chan struct{})

	var once sync.Once

	l.workers.Add(1)

	go func() {
		defer l.workers.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				task()
			case <-cancel:
				return
			case <-l.quit:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(cancel) }) }
}

// After runs the task on the primary context once the delay elapses.
func (l *Loop) After(delay time.Duration, task func()) {
	l.workers.Add(1)

	go func() {
		defer l.workers.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			l.NextTick(task)
		case <-l.quit:
		}
	}()
}

// Stop shuts the loop down, cancels timers and waits for queued tasks
// and background workers to finish.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.quit) })
	<-l.done
	l.workers.Wait()
}
