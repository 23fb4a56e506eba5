// Package txlog buffers operation log lines and writes them to a rotating file.
package txlog

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vergecraft/coinsync/internal/domain"
)

const timeFormat = "02/01/2006 15:04:05"

// Logger accumulates operation log lines and flushes them periodically.
// Entries from other nodes (replicated transaction logs) go through
// AddExternal and are tagged as such.
type Logger struct {
	logger zerolog.Logger
	out    *lumberjack.Logger

	mu      sync.Mutex
	pending []string
}

// New returns a logger writing to the given file path.
func New(path string, logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger,
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    25, // megabytes
			MaxBackups: 4,
		},
	}
}

// AddOperation queues a loggable operation result.
func (l *Logger) AddOperation(result domain.OperationResult) {
	if !result.Loggable {
		return
	}

	l.add(result.Log)
}

// AddExternal queues a log line replicated from another node.
func (l *Logger) AddExternal(line string) {
	l.add("[remote] " + line)
}

func (l *Logger) add(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, fmt.Sprintf("[%s] %s", time.Now().Format(timeFormat), line))
}

// Write flushes all pending lines to the file.
func (l *Logger) Write() {
	l.mu.Lock()
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()

	for i, line := range pending {
		if _, err := l.out.Write([]byte(line + "\n")); err != nil {
			l.logger.Error().Err(err).Msg("cannot write operation log")

			// Put the unwritten tail back ahead of anything queued since,
			// so the next flush retries it in order.
			l.mu.Lock()
			l.pending = append(append([]string{}, pending[i:]...), l.pending...)
			l.mu.Unlock()

			return
		}
	}
}

// Close flushes pending lines and closes the file.
func (l *Logger) Close() error {
	l.Write()
	return l.out.Close()
}
