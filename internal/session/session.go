// Package session holds the replay state of one binary search run: the
// array, the current target, its precomputed trace, and a cursor into it.
//
// A Session is owned by a single host (TUI, CLI, test). Distinct sessions
// share no state and may be used from different goroutines. A single
// Session is not safe for concurrent use.
package session

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/san-kum/bsviz/internal/search"
)

// ErrIndexOutOfRange is returned by SelectIndex for a position outside the array.
var ErrIndexOutOfRange = errors.New("session: index out of range")

type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes session debug logs to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Session replays the trace of one target over a fixed array.
type Session[T cmp.Ordered] struct {
	array  []T
	trace  search.Trace[T]
	cursor int
	log    *zap.Logger
}

// New validates array, plans the search for target and positions the
// cursor on the initial step.
func New[T cmp.Ordered](array []T, target T, opts ...Option) (*Session[T], error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	tr, err := search.Plan(array, target)
	if err != nil {
		return nil, err
	}

	s := &Session[T]{
		array: slices.Clone(array),
		trace: tr,
		log:   o.logger,
	}
	s.log.Debug("session created",
		zap.Int("size", len(array)),
		zap.Any("target", target),
		zap.Int("steps", tr.Len()))
	return s, nil
}

// Next advances one step. It reports false, leaving the cursor alone, when
// already on the last step.
func (s *Session[T]) Next() bool {
	if s.cursor >= s.trace.Len()-1 {
		return false
	}
	s.cursor++
	return true
}

// Prev moves back one step. It reports false on the initial step.
func (s *Session[T]) Prev() bool {
	if s.cursor <= 0 {
		return false
	}
	s.cursor--
	return true
}

// Reset returns to the initial step without replanning.
func (s *Session[T]) Reset() {
	s.cursor = 0
}

// Seek jumps to step i, clamped to the trace.
func (s *Session[T]) Seek(i int) {
	s.cursor = max(0, min(i, s.trace.Len()-1))
}

// Last jumps to the terminal step.
func (s *Session[T]) Last() {
	s.cursor = s.trace.Len() - 1
}

// SelectTarget replans for target and rewinds to the initial step. On
// error the previous trace and cursor are kept.
func (s *Session[T]) SelectTarget(target T) error {
	tr, err := search.Plan(s.array, target)
	if err != nil {
		s.log.Debug("target rejected", zap.Any("target", target), zap.Error(err))
		return err
	}
	s.trace = tr
	s.cursor = 0
	s.log.Debug("target selected",
		zap.Any("target", target),
		zap.Int("steps", tr.Len()),
		zap.Bool("found", tr.Last().Found))
	return nil
}

// SelectIndex makes array[i] the new target.
func (s *Session[T]) SelectIndex(i int) error {
	if i < 0 || i >= len(s.array) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.array))
	}
	return s.SelectTarget(s.array[i])
}

func (s *Session[T]) Current() search.Step {
	return s.trace.At(s.cursor)
}

func (s *Session[T]) Index() int {
	return s.cursor
}

func (s *Session[T]) Len() int {
	return s.trace.Len()
}

func (s *Session[T]) AtStart() bool {
	return s.cursor == 0
}

func (s *Session[T]) AtEnd() bool {
	return s.cursor == s.trace.Len()-1
}

// Trace returns the current trace. Callers must not modify it.
func (s *Session[T]) Trace() search.Trace[T] {
	return s.trace
}

func (s *Session[T]) Target() T {
	return s.trace.Target
}

// Array returns a copy of the searched array.
func (s *Session[T]) Array() []T {
	return slices.Clone(s.array)
}

// Label renders the cursor position as "step i of n", n being the index of
// the last step.
func (s *Session[T]) Label() string {
	return fmt.Sprintf("step %d of %d", s.cursor, s.trace.Len()-1)
}
