package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tasklist/internal/model"
)

// 16-colour ANSI indexes; as backgrounds they render as 101..104.
const (
	red    = lipgloss.Color("9")
	yellow = lipgloss.Color("11")
	green  = lipgloss.Color("10")
	blue   = lipgloss.Color("12")
)

var priorityColors = map[model.Priority]lipgloss.Color{
	model.PriorityCritical: red,
	model.PriorityHigh:     yellow,
	model.PriorityNormal:   green,
	model.PriorityLow:      blue,
}

var dueColors = map[model.DueTag]lipgloss.Color{
	model.DueOverdue: red,
	model.DueToday:   yellow,
	model.DueInTime:  green,
}

// PriorityBadge is a one-cell block coloured by priority.
func (c *Console) PriorityBadge(p model.Priority) string {
	return c.badge(priorityColors[p])
}

// DueBadge is a one-cell block coloured by due tag.
func (c *Console) DueBadge(d model.DueTag) string {
	return c.badge(dueColors[d])
}

func (c *Console) badge(col lipgloss.Color) string {
	if c.plain || col == "" {
		return " "
	}
	return c.r.NewStyle().Background(col).Render(" ")
}
