package cli

import (
	"io"

	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/logging"
	"github.com/idilsaglam/tasklist/internal/store"
	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// Streams are the standard streams of one session.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run loads the task list, runs the interactive loop and saves on exit.
// It returns the process exit code (0 ok, 1 load, save or input failure).
func Run(cfg *config.Config, std Streams, opts ...store.Option) int {
	logger := logging.New(std.Err, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	con := ui.NewConsole(std.Out, std.Err, cfg.ColorMode())
	for _, src := range cfg.Sources {
		logger.Debug("config file applied", "path", src)
	}

	file, err := jsonstore.Open(cfg.DataFile)
	if err != nil {
		con.Fail("open: " + err.Error())
		return 1
	}
	loaded, err := file.Load()
	if err != nil {
		logger.Error("load failed", "path", file.Path, "err", err)
		con.Fail("load " + file.Path + ": " + err.Error())
		return 1
	}
	tasks := store.New(opts...)
	tasks.Load(loaded)
	logger.Info("tasks loaded", "path", file.Path, "count", tasks.Count())

	code := 0
	if err := NewShell(std.In, con, tasks, logger).Loop(); err != nil {
		// Input broke mid-session; still keep what was entered.
		logger.Error("input failed", "err", err)
		con.Fail(err.Error())
		code = 1
	}

	if err := file.Save(tasks.Tasks()); err != nil {
		logger.Error("save failed", "path", file.Path, "err", err)
		con.Fail("save " + file.Path + ": " + err.Error())
		return 1
	}
	logger.Info("tasks saved", "path", file.Path, "count", tasks.Count())
	con.Say("Tasklist exiting!")
	return code
}
