package carousel

import (
	"fmt"
	"time"
)

// Elements identifies the backing view surface the carousel drives. The
// carousel only checks presence; rendering is the caller's concern.
type Elements struct {
	Slides   []string
	Prev     string
	Next     string
	Status   string
	HasPrev  bool
	HasNext  bool
	HasTrack bool
}

// Validate reports whether the required elements are present. The
// indicator strip and status region are optional; everything else is
// required.
func (e Elements) Validate() error {
	if !e.HasTrack {
		return fmt.Errorf("carousel track missing")
	}
	if len(e.Slides) == 0 {
		return fmt.Errorf("no slides found")
	}
	if !e.HasPrev || !e.HasNext {
		return fmt.Errorf("navigation controls missing")
	}
	return nil
}

// Lookup locates the backing elements. It is retried when it fails.
type Lookup func() (Elements, error)

// RetryPolicy bounds mount attempts: MaxAttempts tries, Delay apart.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultRetryPolicy is 5 tries, 200ms apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, Delay: 200 * time.Millisecond}
}

// Mounter drives bounded retry of element lookup. One Attempt per
// scheduled retry; when Exhausted reports true the carousel stays
// inert and the caller logs a diagnostic.
type Mounter struct {
	lookup   Lookup
	policy   RetryPolicy
	attempts int
}

// NewMounter builds a Mounter. A zero policy falls back to the default.
func NewMounter(lookup Lookup, policy RetryPolicy) *Mounter {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy()
	}
	return &Mounter{lookup: lookup, policy: policy}
}

// Attempt runs one lookup. On success it returns the validated
// elements. On failure the error describes the missing piece; check
// Exhausted to decide whether another attempt should be scheduled.
func (m *Mounter) Attempt() (Elements, error) {
	m.attempts++
	if m.lookup == nil {
		return Elements{}, fmt.Errorf("attempt %d: no element lookup wired", m.attempts)
	}
	els, err := m.lookup()
	if err != nil {
		return Elements{}, fmt.Errorf("attempt %d: %w", m.attempts, err)
	}
	if err := els.Validate(); err != nil {
		return Elements{}, fmt.Errorf("attempt %d: %w", m.attempts, err)
	}
	return els, nil
}

// Exhausted reports whether the attempt budget is spent.
func (m *Mounter) Exhausted() bool {
	return m.attempts >= m.policy.MaxAttempts
}

// Delay returns the fixed wait between attempts.
func (m *Mounter) Delay() time.Duration { return m.policy.Delay }
