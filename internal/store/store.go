// Package store keeps the ordered in-memory task list.
//
// Tasks are addressed two ways: by Position, the 1-based rank in the
// current order that the table shows and the user types, and by ID, the
// sequential key assigned at creation and persisted with the task.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/tasklist/internal/model"
)

var ErrInvalidPosition = errors.New("invalid task number")

// Store owns every task. Callers get copies, never aliases.
type Store struct {
	tasks  []model.Task
	nextID int
	now    func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now for due-tag classification.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{nextID: 1, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the contents with tasks as given, stored IDs and due tags
// included. New IDs continue after the highest loaded one.
func (s *Store) Load(tasks []model.Task) {
	s.tasks = make([]model.Task, 0, len(tasks))
	s.nextID = 1
	for _, t := range tasks {
		s.tasks = append(s.tasks, clone(t))
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
}

// Add appends a new task and returns it.
func (s *Store) Add(description []string, p model.Priority, date model.Date, clock model.Clock) model.Task {
	t := model.Task{
		ID:          s.nextID,
		Description: append([]string(nil), description...),
		Date:        date,
		Time:        clock,
		Priority:    p,
		DueTag:      model.Classify(date, s.now()),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return clone(t)
}

// Delete removes the task at pos; later tasks move up one position.
func (s *Store) Delete(pos int) (model.Task, error) {
	if err := s.check(pos); err != nil {
		return model.Task{}, err
	}
	idx := pos - 1
	removed := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return clone(removed), nil
}

// Edit applies e to the task at pos and returns the updated task.
func (s *Store) Edit(pos int, e Edit) (model.Task, error) {
	if err := s.check(pos); err != nil {
		return model.Task{}, err
	}
	t := &s.tasks[pos-1]
	e.apply(t, s.now())
	return clone(*t), nil
}

func (s *Store) Count() int { return len(s.tasks) }

// Tasks returns a copy of all tasks in position order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = clone(t)
	}
	return out
}

// ParsePosition validates user input naming a position in 1..Count().
func (s *Store) ParsePosition(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPosition, input)
	}
	if err := s.check(n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) check(pos int) error {
	if pos < 1 || pos > len(s.tasks) {
		return fmt.Errorf("%w: have %d, got %d", ErrInvalidPosition, len(s.tasks), pos)
	}
	return nil
}

func clone(t model.Task) model.Task {
	t.Description = append([]string(nil), t.Description...)
	return t
}
