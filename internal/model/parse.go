package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidDueTag   = errors.New("invalid due tag")
	ErrBlankTask       = errors.New("task is blank")
)

// ParsePriority accepts one of C, H, N, L in any case.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// ParseDate accepts yyyy-mm-dd (components need not be zero-padded) and
// rejects dates that do not exist in the calendar.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q: want yyyy-mm-dd", ErrInvalidDate, s)
	}
	y, err1 := number(parts[0], 4)
	m, err2 := number(parts[1], 2)
	d, err3 := number(parts[2], 2)
	if err := errors.Join(err1, err2, err3); err != nil {
		return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	if y < 1 || m < 1 || m > 12 || d < 1 {
		return Date{}, fmt.Errorf("%w: %q: out of range", ErrInvalidDate, s)
	}
	// time.Date normalises overflow (Feb 30 -> Mar 2); a mismatch means the
	// date does not exist.
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return Date{}, fmt.Errorf("%w: %q: no such day", ErrInvalidDate, s)
	}
	return Date{Year: y, Month: time.Month(m), Day: d}, nil
}

// ParseTime accepts hh:mm on a 24-hour clock.
func ParseTime(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("%w: %q: want hh:mm", ErrInvalidTime, s)
	}
	h, err1 := number(parts[0], 2)
	m, err2 := number(parts[1], 2)
	if err := errors.Join(err1, err2); err != nil {
		return Clock{}, fmt.Errorf("%w: %q: %v", ErrInvalidTime, s, err)
	}
	if h > 23 || m > 59 {
		return Clock{}, fmt.Errorf("%w: %q: out of range", ErrInvalidTime, s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// ParseDescription trims the collected lines and drops blank ones.
// At least one line must remain.
func ParseDescription(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			out = append(out, ln)
		}
	}
	if len(out) == 0 {
		return nil, ErrBlankTask
	}
	return out, nil
}

// number parses an unsigned decimal of 1..maxDigits digits.
func number(s string, maxDigits int) (int, error) {
	if s == "" || len(s) > maxDigits {
		return 0, fmt.Errorf("bad number %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("bad number %q", s)
		}
	}
	return strconv.Atoi(s)
}
