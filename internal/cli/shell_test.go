package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store"
	"github.com/idilsaglam/tasklist/internal/ui"
)

var today = time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)

type session struct {
	tasks *store.Store
	out   bytes.Buffer
}

// run feeds the lines to a fresh shell over tasks and returns the combined
// output.
func (s *session) run(t *testing.T, lines ...string) string {
	t.Helper()
	s.out.Reset()
	con := ui.NewConsole(&s.out, &s.out, ui.ColorNever)
	sh := NewShell(strings.NewReader(strings.Join(lines, "\n")+"\n"), con, s.tasks, log.New(&bytes.Buffer{}))
	require.NoError(t, sh.Loop())
	return s.out.String()
}

func newSession() *session {
	return &session{tasks: store.New(store.WithClock(func() time.Time { return today }))}
}

func addLines(priority, date, clock string, desc ...string) []string {
	out := []string{"add", priority, date, clock}
	out = append(out, desc...)
	return append(out, "")
}

func TestUnknownAction(t *testing.T) {
	s := newSession()
	out := s.run(t, "list", "  print  ", "end")
	assert.Contains(t, out, "✖ The input action is invalid")
	assert.Contains(t, out, "No tasks have been input")
	assert.Equal(t, 3, strings.Count(out, "Input an action (add, print, edit, delete, end):"))
}

func TestAddRetriesUntilValid(t *testing.T) {
	s := newSession()
	lines := []string{"add", "x", "h", "2022-02-30", "2023-6-1", "25:00", "9:05", "  Buy milk  ", "and bread", "", "end"}
	out := s.run(t, lines...)

	assert.Contains(t, out, "The input priority is invalid")
	assert.Contains(t, out, "The input date is invalid")
	assert.Contains(t, out, "The input time is invalid")

	require.Equal(t, 1, s.tasks.Count())
	got := s.tasks.Tasks()[0]
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.Equal(t, "2023-06-01", got.Date.String())
	assert.Equal(t, "09:05", got.Time.String())
	assert.Equal(t, []string{"Buy milk", "and bread"}, got.Description)
	assert.Equal(t, model.DueToday, got.DueTag)
}

func TestAddBlankDescription(t *testing.T) {
	s := newSession()
	out := s.run(t, append(addLines("n", "2023-06-02", "10:00"), "end")...)
	assert.Contains(t, out, "The task is blank")
	assert.Equal(t, 0, s.tasks.Count())
}

func TestPrintWrapsDescription(t *testing.T) {
	s := newSession()
	long := strings.Repeat("a", 44) + strings.Repeat("b", 44)
	s.run(t, append(addLines("c", "2023-05-31", "08:00", long), "end")...)

	out := s.run(t, "print", "end")
	assert.Contains(t, out, "| 1  | 2023-05-31 | 08:00 |   |   |"+strings.Repeat("a", 44)+"|")
	assert.Contains(t, out, "|    |            |       |   |   |"+strings.Repeat("b", 44)+"|")
}

func TestDelete(t *testing.T) {
	s := newSession()
	var lines []string
	for _, d := range []string{"first", "second", "third"} {
		lines = append(lines, addLines("n", "2023-06-02", "10:00", d)...)
	}
	s.run(t, append(lines, "end")...)

	out := s.run(t, "delete", "0", "four", "2", "end")
	assert.Equal(t, 2, strings.Count(out, "Invalid task number"))
	assert.Contains(t, out, "Input the task number (1-3):")
	assert.Contains(t, out, "✔ The task is deleted")

	var got []string
	for _, task := range s.tasks.Tasks() {
		got = append(got, task.Description[0])
	}
	assert.Equal(t, []string{"first", "third"}, got)
}

func TestDeleteAndEditOnEmptyStore(t *testing.T) {
	s := newSession()
	out := s.run(t, "delete", "edit", "end")
	assert.Equal(t, 2, strings.Count(out, "No tasks have been input"))
	assert.NotContains(t, out, "Input the task number")
}

func TestEdit(t *testing.T) {
	s := newSession()
	s.run(t, append(addLines("l", "2023-06-02", "10:00", "draft"), "end")...)

	t.Run("date reclassifies", func(t *testing.T) {
		out := s.run(t, "edit", "1", "colour", "date", "2023-05-01", "end")
		assert.Contains(t, out, "Invalid field")
		assert.Contains(t, out, "✔ The task is changed")
		got := s.tasks.Tasks()[0]
		assert.Equal(t, "2023-05-01", got.Date.String())
		assert.Equal(t, model.DueOverdue, got.DueTag)
	})

	t.Run("priority and time", func(t *testing.T) {
		s.run(t, "edit", "1", "priority", "c", "edit", "1", "time", "23:59", "end")
		got := s.tasks.Tasks()[0]
		assert.Equal(t, model.PriorityCritical, got.Priority)
		assert.Equal(t, "23:59", got.Time.String())
		assert.Equal(t, model.DueOverdue, got.DueTag)
	})

	t.Run("description", func(t *testing.T) {
		s.run(t, "edit", "1", "task", "new text", "second", "", "end")
		assert.Equal(t, []string{"new text", "second"}, s.tasks.Tasks()[0].Description)
	})

	t.Run("blank description aborts", func(t *testing.T) {
		out := s.run(t, "edit", "1", "task", "", "end")
		assert.Contains(t, out, "The task is blank")
		assert.NotContains(t, out, "The task is changed")
		assert.Equal(t, []string{"new text", "second"}, s.tasks.Tasks()[0].Description)
	})
}

func TestEndOfInputEndsLoop(t *testing.T) {
	s := newSession()
	// no trailing "end"; input stops inside the description
	con := ui.NewConsole(&s.out, &s.out, ui.ColorNever)
	in := strings.NewReader("add\nn\n2023-06-02\n10:00\nlast words")
	require.NoError(t, NewShell(in, con, s.tasks, log.New(&bytes.Buffer{})).Loop())
	require.Equal(t, 1, s.tasks.Count())
	assert.Equal(t, []string{"last words"}, s.tasks.Tasks()[0].Description)

	s.out.Reset()
	in = strings.NewReader("add\nn\n")
	require.NoError(t, NewShell(in, con, s.tasks, log.New(&bytes.Buffer{})).Loop())
	assert.Equal(t, 1, s.tasks.Count())
}

func TestVeryLongLineIsAccepted(t *testing.T) {
	s := newSession()
	long := strings.Repeat("x", 70000)
	lines := addLines("n", "2023-06-02", "10:00", long)
	lines = append(lines, addLines("h", "2023-06-03", "11:00", "short")...)
	s.run(t, append(lines, "end")...)

	tasks := s.tasks.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, []string{long}, tasks[0].Description)
	assert.Equal(t, []string{"short"}, tasks[1].Description)
}

func TestCRLFInput(t *testing.T) {
	s := newSession()
	con := ui.NewConsole(&s.out, &s.out, ui.ColorNever)
	in := strings.NewReader("add\r\nc\r\n2023-06-02\r\n10:00\r\nwindows line\r\n\r\nend\r\n")
	require.NoError(t, NewShell(in, con, s.tasks, log.New(&bytes.Buffer{})).Loop())
	require.Equal(t, 1, s.tasks.Count())
	assert.Equal(t, []string{"windows line"}, s.tasks.Tasks()[0].Description)
}
