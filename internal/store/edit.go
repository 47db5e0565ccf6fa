package store

import (
	"time"

	"github.com/idilsaglam/tasklist/internal/model"
)

// Edit is a single-field change to a task. The set of implementations is
// closed: SetPriority, SetDate, SetTime and SetDescription.
type Edit interface {
	Field() string
	apply(t *model.Task, now time.Time)
}

type priorityEdit struct{ p model.Priority }

func SetPriority(p model.Priority) Edit { return priorityEdit{p} }

func (priorityEdit) Field() string { return "priority" }
func (e priorityEdit) apply(t *model.Task, _ time.Time) { t.Priority = e.p }

type dateEdit struct{ d model.Date }

// SetDate also reclassifies the due tag.
func SetDate(d model.Date) Edit { return dateEdit{d} }

func (dateEdit) Field() string { return "date" }
func (e dateEdit) apply(t *model.Task, now time.Time) {
	t.Date = e.d
	t.DueTag = model.Classify(e.d, now)
}

type timeEdit struct{ c model.Clock }

func SetTime(c model.Clock) Edit { return timeEdit{c} }

func (timeEdit) Field() string { return "time" }
func (e timeEdit) apply(t *model.Task, _ time.Time) { t.Time = e.c }

type descriptionEdit struct{ lines []string }

func SetDescription(lines []string) Edit {
	return descriptionEdit{append([]string(nil), lines...)}
}

func (descriptionEdit) Field() string { return "task" }
func (e descriptionEdit) apply(t *model.Task, _ time.Time) {
	t.Description = append([]string(nil), e.lines...)
}
