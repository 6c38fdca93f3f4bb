package progress

import (
	"time"

	"github.com/im7mortal/kmutex"
	"github.com/sirupsen/logrus"
)

// Sink receives progress notifications from long-running core
// operations (maximize's pairwise fan-out, diagram computation,
// coloring-graph construction). Implementations must be safe for
// concurrent use: the core calls Notify from worker goroutines.
type Sink interface {
	Notify(tag string, current, total int)
}

// Null discards every notification. It is the default when a caller
// has no progress transport to wire up.
type Null struct{}

// Notify implements Sink.
func (Null) Notify(string, int, int) {}

// LogSink rate-limits notifications to at most one every 300ms per
// distinct tag (a notification with current >= total is always
// logged) and logs the survivors structurally via logrus. Two
// goroutines notifying on different tags never block each other: the
// per-tag lock from kmutex only serializes same-tag notifications,
// generalizing the original engine's single last-message/last-time
// pair (which only needed one slot because its EventHandler was
// driven from a single thread at a time).
type LogSink struct {
	log      *logrus.Logger
	locks    *kmutex.Kmutex
	interval time.Duration
	last     map[string]time.Time
	mu       chan struct{} // guards last; buffered(1) channel used as a mutex
}

// NewLogSink builds a LogSink logging through log (or logrus's
// standard logger if nil).
func NewLogSink(log *logrus.Logger) *LogSink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &LogSink{
		log:      log,
		locks:    kmutex.New(),
		interval: 300 * time.Millisecond,
		last:     make(map[string]time.Time),
		mu:       make(chan struct{}, 1),
	}
	s.mu <- struct{}{}
	return s
}

// Notify implements Sink.
func (s *LogSink) Notify(tag string, current, total int) {
	s.locks.Lock(tag)
	defer s.locks.Unlock(tag)

	now := time.Now()
	<-s.mu
	last, seen := s.last[tag]
	due := !seen || now.Sub(last) >= s.interval || current >= total
	if due {
		s.last[tag] = now
	}
	s.mu <- struct{}{}

	if !due {
		return
	}
	s.log.WithFields(logrus.Fields{
		"tag":     tag,
		"current": current,
		"total":   total,
	}).Debug("progress")
}
