package lvlog

import (
	"io"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/trickstertwo/lvlog/internal/encode"
)

// ColorMode selects whether the console sink emits ANSI colors.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota // colors when the output is a terminal and NO_COLOR is unset
	ColorAlways
	ColorNever
)

// ParseColorMode accepts "auto", "always" and "never"; anything else is ColorAuto.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always", "on", "true", "1":
		return ColorAlways
	case "never", "off", "false", "0":
		return ColorNever
	default:
		return ColorAuto
	}
}

const consoleTimeLayout = "15:04:05"

// Console is the implicit default sink. It writes
//
//	HH:MM:SS LEVEL file:line: message
//
// with the level colored and the location dimmed when colors are enabled.
// Its threshold is independent from the logger's global level.
type Console struct {
	w        io.Writer
	minLevel atomic.Int32
	levels   [len(levelNames)]*color.Color
	dim      *color.Color
}

// NewConsole builds a console sink on w. A nil w means stderr.
func NewConsole(w io.Writer, mode ColorMode) *Console {
	if w == nil {
		w = os.Stderr
	}
	useColor := mode == ColorAlways || (mode == ColorAuto && isTerminal(w))
	if f, ok := w.(*os.File); ok && useColor {
		// translate escape sequences on legacy Windows consoles
		w = colorable.NewColorable(f)
	}

	c := &Console{w: w, dim: color.New(color.FgHiBlack)}
	for i := range c.levels {
		c.levels[i] = color.New(Level(i).Color())
	}
	for _, cc := range append(c.levels[:], c.dim) {
		if useColor {
			cc.EnableColor()
		} else {
			cc.DisableColor()
		}
	}
	return c
}

func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetLevel sets the console's own threshold.
func (c *Console) SetLevel(l Level) { c.minLevel.Store(int32(l.Clamp())) }

// Level returns the console's own threshold.
func (c *Console) Level() Level { return Level(c.minLevel.Load()) }

func (c *Console) Write(ev *Event) error {
	buf := encode.Get()
	defer encode.Put(buf)

	encode.AppendTime(buf, ev.Time, consoleTimeLayout)
	buf.AppendByte(' ')
	lvl := ev.Level.Clamp()
	buf.AppendString(c.levels[lvl].Sprintf("%-5s", lvl.String()))
	buf.AppendByte(' ')
	buf.AppendString(c.dim.Sprint(ev.File + ":" + strconv.Itoa(ev.Line) + ":"))
	buf.AppendByte(' ')
	buf.AppendString(ev.Message())
	buf.AppendByte('\n')

	_, err := c.w.Write(buf.B)
	return err
}
