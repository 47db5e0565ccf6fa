package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// Shell is the interactive command loop over one task store.
type Shell struct {
	in    *bufio.Reader
	con   *ui.Console
	tasks *store.Store
	log   *log.Logger
}

func NewShell(in io.Reader, con *ui.Console, tasks *store.Store, logger *log.Logger) *Shell {
	return &Shell{
		in:    bufio.NewReader(in),
		con:   con,
		tasks: tasks,
		log:   logger,
	}
}

// Loop prompts for actions until "end" or until input runs out.
func (s *Shell) Loop() error {
	for {
		s.con.Say("Input an action (add, print, edit, delete, end):")
		line, err := s.readLine()
		if err != nil {
			return eofOK(err)
		}
		action := strings.TrimSpace(line)
		switch action {
		case "add":
			err = s.add()
		case "delete":
			err = s.delete()
		case "edit":
			err = s.edit()
		case "print":
			s.con.Tasks(s.tasks.Tasks())
		case "end":
			return nil
		default:
			s.log.Debug("rejected action", "input", action)
			s.con.Fail("The input action is invalid")
		}
		if err != nil {
			return eofOK(err)
		}
	}
}

func (s *Shell) add() error {
	p, err := s.askPriority()
	if err != nil {
		return err
	}
	d, err := s.askDate()
	if err != nil {
		return err
	}
	c, err := s.askTime()
	if err != nil {
		return err
	}
	lines, err := s.askDescription()
	if errors.Is(err, model.ErrBlankTask) {
		s.con.Fail("The task is blank")
		return nil
	}
	if err != nil {
		return err
	}
	t := s.tasks.Add(lines, p, d, c)
	s.log.Info("task added", "id", t.ID, "due", t.DueTag.String())
	return nil
}

func (s *Shell) delete() error {
	pos, err := s.askPosition()
	if err != nil || pos == 0 {
		return err
	}
	t, err := s.tasks.Delete(pos)
	if err != nil {
		return err
	}
	s.log.Info("task deleted", "id", t.ID, "position", pos)
	s.con.OK("The task is deleted")
	return nil
}

func (s *Shell) edit() error {
	pos, err := s.askPosition()
	if err != nil || pos == 0 {
		return err
	}
	var e store.Edit
	for e == nil {
		s.con.Say("Input a field to edit (priority, date, time, task):")
		line, err := s.readLine()
		if err != nil {
			return err
		}
		switch field := strings.TrimSpace(line); field {
		case "priority":
			p, err := s.askPriority()
			if err != nil {
				return err
			}
			e = store.SetPriority(p)
		case "date":
			d, err := s.askDate()
			if err != nil {
				return err
			}
			e = store.SetDate(d)
		case "time":
			c, err := s.askTime()
			if err != nil {
				return err
			}
			e = store.SetTime(c)
		case "task":
			lines, err := s.askDescription()
			if errors.Is(err, model.ErrBlankTask) {
				s.con.Fail("The task is blank")
				return nil
			}
			if err != nil {
				return err
			}
			e = store.SetDescription(lines)
		default:
			s.log.Debug("rejected field", "input", field)
			s.con.Fail("Invalid field")
		}
	}
	t, err := s.tasks.Edit(pos, e)
	if err != nil {
		return err
	}
	s.log.Info("task edited", "id", t.ID, "field", e.Field())
	s.con.OK("The task is changed")
	return nil
}

// askPosition shows the table and reads a valid position. It returns 0
// without prompting when the store is empty.
func (s *Shell) askPosition() (int, error) {
	if s.tasks.Count() == 0 {
		s.con.Note("No tasks have been input")
		return 0, nil
	}
	s.con.Tasks(s.tasks.Tasks())
	for {
		s.con.Say(fmt.Sprintf("Input the task number (1-%d):", s.tasks.Count()))
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		pos, err := s.tasks.ParsePosition(line)
		if err == nil {
			return pos, nil
		}
		s.log.Debug("rejected position", "err", err)
		s.con.Fail("Invalid task number")
	}
}

func (s *Shell) askPriority() (model.Priority, error) {
	return ask(s, "Input the task priority (C, H, N, L):", "The input priority is invalid", model.ParsePriority)
}

func (s *Shell) askDate() (model.Date, error) {
	return ask(s, "Input the date (yyyy-mm-dd):", "The input date is invalid", model.ParseDate)
}

func (s *Shell) askTime() (model.Clock, error) {
	return ask(s, "Input the time (hh:mm):", "The input time is invalid", model.ParseTime)
}

// ask prompts until parse accepts a line.
func ask[T any](s *Shell, prompt, invalid string, parse func(string) (T, error)) (T, error) {
	for {
		s.con.Say(prompt)
		line, err := s.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		s.log.Debug("rejected input", "err", err)
		s.con.Fail(invalid)
	}
}

// askDescription collects lines up to the first blank one. End of input
// also terminates the description.
func (s *Shell) askDescription() ([]string, error) {
	s.con.Say("Input a new task (enter a blank line to end):")
	var lines []string
	for {
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return model.ParseDescription(lines)
}

// readLine returns the next line without its terminator. Lines have no
// length limit; a final line without a newline is still returned.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func eofOK(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
