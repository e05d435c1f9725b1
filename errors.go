package lvlog

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrCapacityExceeded is returned when a sink is added to a full registry.
	ErrCapacityExceeded = errors.New("lvlog: sink registry is full")
	// ErrInvalidLevel is returned by ParseLevel for unknown names.
	ErrInvalidLevel = errors.New("lvlog: invalid level")
	// ErrNilSink is returned when a nil sink or writer is registered.
	ErrNilSink = errors.New("lvlog: nil sink")
)

// ErrorHandler receives failures of individual sinks. Log itself never reports them.
type ErrorHandler func(error)

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "lvlog error: %v\n", err) }
