package model

import (
	"fmt"
	"strings"
)

// Task is the domain model for a to-do entry.
// ID is the persisted record key; the 1-based position shown in the table
// is derived from list order and never stored.
type Task struct {
	ID          int      `json:"id"`
	Description []string `json:"taskDescription"`
	Date        Date     `json:"date"`
	Time        Clock    `json:"time"`
	Priority    Priority `json:"priority"`
	DueTag      DueTag   `json:"dueTag"`
}

// Priority is the single-letter urgency code.
type Priority string

const (
	PriorityCritical Priority = "C"
	PriorityHigh     Priority = "H"
	PriorityNormal   Priority = "N"
	PriorityLow      Priority = "L"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityNormal:
		return "Normal"
	case PriorityLow:
		return "Low"
	}
	return string(p)
}

func (p *Priority) UnmarshalText(b []byte) error {
	v := Priority(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, string(b))
	}
	*p = v
	return nil
}

// DueTag classifies a task against the current date.
type DueTag string

const (
	DueInTime  DueTag = "I"
	DueToday   DueTag = "T"
	DueOverdue DueTag = "O"
)

func (d DueTag) Valid() bool {
	switch d {
	case DueInTime, DueToday, DueOverdue:
		return true
	}
	return false
}

func (d DueTag) String() string {
	switch d {
	case DueInTime:
		return "In-time"
	case DueToday:
		return "Today"
	case DueOverdue:
		return "Overdue"
	}
	return string(d)
}

func (d *DueTag) UnmarshalText(b []byte) error {
	v := DueTag(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDueTag, string(b))
	}
	*d = v
	return nil
}

// Validate checks the invariants a decoded task must hold. Date, Clock,
// Priority and DueTag are checked while decoding; this covers the rest.
func (t Task) Validate() error {
	if t.ID < 1 {
		return fmt.Errorf("task id %d: must be positive", t.ID)
	}
	if len(t.Description) == 0 {
		return fmt.Errorf("task %d: %w", t.ID, ErrBlankTask)
	}
	for i, ln := range t.Description {
		if strings.TrimSpace(ln) == "" {
			return fmt.Errorf("task %d: description line %d is blank", t.ID, i+1)
		}
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("task %d: %w: %q", t.ID, ErrInvalidPriority, string(t.Priority))
	}
	if !t.DueTag.Valid() {
		return fmt.Errorf("task %d: %w: %q", t.ID, ErrInvalidDueTag, string(t.DueTag))
	}
	if t.Date.IsZero() {
		return fmt.Errorf("task %d: %w: missing", t.ID, ErrInvalidDate)
	}
	return nil
}
