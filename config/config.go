// Package config builds lvlog loggers from TOML files or the environment.
//
// A file looks like:
//
//	level = "debug"
//	quiet = false
//	console_level = "info"
//	color = "auto"
//	locked = true
//
//	[[file]]
//	path = "~/logs/app.log"
//	level = "$APP_FILE_LEVEL"
//	format = "json"
//
// String values starting with "$" are replaced by the named environment variable.
package config

import (
	"io"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/trickstertwo/lvlog"
)

// Config describes a logger: global level, console settings and file sinks.
type Config struct {
	Level         string `toml:"level"`
	Quiet         bool   `toml:"quiet"`
	ConsoleLevel  string `toml:"console_level"`
	Color         string `toml:"color"`           // auto|always|never
	Capacity      int    `toml:"capacity"`        // 0 = lvlog.MaxSinks, negative = unbounded
	MaxMessageLen int    `toml:"max_message_len"` // 0 = unbounded
	Locked        bool   `toml:"locked"`          // hold a mutex around each dispatch
	Files         []File `toml:"file"`
}

// File is a file sink.
type File struct {
	Path   string `toml:"path"`
	Level  string `toml:"level"`
	Format string `toml:"format"` // text|json
}

// Build opens every configured file and returns a logger writing to them.
// The returned io.Closer closes the files; it does not touch the console.
func (c *Config) Build() (*lvlog.Logger, io.Closer, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, nil, errors.Wrap(err, "level")
	}
	consoleLevel, err := parseLevel(c.ConsoleLevel)
	if err != nil {
		return nil, nil, errors.Wrap(err, "console_level")
	}

	console := lvlog.NewConsole(nil, lvlog.ParseColorMode(c.Color))
	console.SetLevel(consoleLevel)

	capacity := c.Capacity
	switch {
	case capacity == 0:
		capacity = lvlog.MaxSinks
	case capacity < 0:
		capacity = 0
	}

	b := lvlog.NewBuilder().
		WithMinLevel(level).
		WithQuiet(c.Quiet).
		WithConsole(console).
		WithCapacity(capacity).
		WithMaxMessageLen(c.MaxMessageLen)
	if c.Locked {
		b.WithLock(&sync.Mutex{})
	}

	var files closers
	for i, f := range c.Files {
		w, opts, minLevel, err := openFile(f)
		if err != nil {
			files.Close()
			return nil, nil, errors.Wrapf(err, "file #%d", i)
		}
		files = append(files, w)
		b.AddWriter(w, minLevel, opts...)
	}

	l, err := b.Build()
	if err != nil {
		files.Close()
		return nil, nil, err
	}
	return l, files, nil
}

func openFile(f File) (io.WriteCloser, []lvlog.WriterOption, lvlog.Level, error) {
	minLevel, err := parseLevel(f.Level)
	if err != nil {
		return nil, nil, 0, err
	}
	var opts []lvlog.WriterOption
	switch strings.ToLower(strings.TrimSpace(f.Format)) {
	case "", "text":
	case "json":
		opts = append(opts, lvlog.WithFormat(lvlog.FormatJSON))
	default:
		return nil, nil, 0, errors.Errorf("unknown format %q", f.Format)
	}
	if f.Path == "" {
		return nil, nil, 0, errors.New("empty path")
	}
	path, err := homedir.Expand(f.Path)
	if err != nil {
		return nil, nil, 0, errors.Wrapf(err, "expand %s", f.Path)
	}
	w, err := lvlog.OpenFile(path)
	if err != nil {
		return nil, nil, 0, err
	}
	return w, opts, minLevel, nil
}

// parseLevel treats the empty string as TRACE.
func parseLevel(s string) (lvlog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return lvlog.LevelTrace, nil
	}
	return lvlog.ParseLevel(s)
}

type closers []io.WriteCloser

func (cs closers) Close() error {
	var err error
	for _, c := range cs {
		err = multierr.Append(err, c.Close())
	}
	return err
}
