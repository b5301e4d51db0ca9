// Package autosave mirrors the full snapshot to a user-chosen file after
// each mutation. It is strictly advisory: a failed mirror is logged and
// swallowed, never surfaced to the caller of the original mutation, and
// the next successful mutation rewrites the whole file with fresh data, so
// a single miss is self-healing.
package autosave

import (
	"errors"
	"fmt"
	"os"

	"github.com/untwistapp/untwist/internal/logger"
	"github.com/untwistapp/untwist/internal/snapshot"
)

// ErrDestinationUnavailable marks a destination that can no longer be
// written. It is internal to the sidecar: Trigger logs it and moves on.
var ErrDestinationUnavailable = errors.New("auto-save destination unavailable")

// Sidecar owns the auto-save state for one session. The destination path
// is session-scoped and never persisted; only the enabled flag lives in
// settings and must be combined with a destination each session.
type Sidecar struct {
	enabled     bool
	destination string
}

func New() *Sidecar {
	return &Sidecar{}
}

// SetEnabled toggles the feature for this session.
func (s *Sidecar) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// SetDestination sets the mirror target for this session. An empty path
// clears it.
func (s *Sidecar) SetDestination(path string) {
	s.destination = path
}

// Active reports whether a trigger would attempt a write.
func (s *Sidecar) Active() bool {
	return s.enabled && s.destination != ""
}

// Trigger writes the snapshot to the destination. It never returns an
// error and never panics: all failures are logged and dropped.
func (s *Sidecar) Trigger(doc snapshot.Document) {
	if !s.Active() {
		return
	}

	if err := s.write(doc); err != nil {
		logger.Warn("Auto-save failed", "destination", s.destination, "error", err)
	}
}

func (s *Sidecar) write(doc snapshot.Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.destination, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrDestinationUnavailable, err)
	}
	return nil
}
