package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tasklist/internal/model"
)

// DescriptionWidth is the width of the Task column.
const DescriptionWidth = 44

const (
	tableRule   = "+----+------------+-------+---+---+--------------------------------------------+"
	tableHeader = "| N  |    Date    | Time  | P | D |                   Task                     |"
)

// Tasks prints the task table, or a notice when there is nothing to show.
func (c *Console) Tasks(tasks []model.Task) {
	if len(tasks) == 0 {
		c.Note("No tasks have been input")
		return
	}
	fmt.Fprint(c.out, c.Table(tasks))
}

// Table renders tasks with their 1-based positions. Each task is one block
// between rules; wrapped description lines continue on rows whose other
// cells are blank.
func (c *Console) Table(tasks []model.Task) string {
	var b strings.Builder
	b.WriteString(tableRule + "\n")
	b.WriteString(tableHeader + "\n")
	b.WriteString(tableRule + "\n")
	for i, t := range tasks {
		var lines []string
		for _, ln := range t.Description {
			lines = append(lines, Chunk(ln, DescriptionWidth)...)
		}
		if len(lines) == 0 {
			lines = []string{""}
		}
		b.WriteString(row(strconv.Itoa(i+1), t.Date.String(), t.Time.String(),
			c.PriorityBadge(t.Priority), c.DueBadge(t.DueTag), lines[0]))
		for _, ln := range lines[1:] {
			b.WriteString(row("", "", "", "", "", ln))
		}
		b.WriteString(tableRule + "\n")
	}
	return b.String()
}

func row(n, date, clock, p, d, desc string) string {
	return "| " + pad(n, 2) + " | " + pad(date, 10) + " | " + pad(clock, 5) +
		" | " + pad(p, 1) + " | " + pad(d, 1) + " |" + pad(desc, DescriptionWidth) + "|\n"
}

// pad right-fills s to w visible cells; escape sequences take no width.
func pad(s string, w int) string {
	if vis := lipgloss.Width(s); vis < w {
		return s + strings.Repeat(" ", w-vis)
	}
	return s
}
