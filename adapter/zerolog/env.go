package zerolog

import (
	"os"

	"github.com/trickstertwo/lvlog"
)

// ConfigFromEnv reads a Config from the environment:
//
//	LVLOG_ZEROLOG_LEVEL=trace|debug|info|warn|error|fatal (default trace)
//	LVLOG_ZEROLOG_CONSOLE=1          : enable ConsoleWriter (pretty output)
//	LVLOG_ZEROLOG_TIMEFORMAT=...     : optional console time layout (default RFC3339Nano)
//	NO_COLOR                         : disable console colors
func ConfigFromEnv() Config {
	cfg := Config{MinLevel: lvlog.LevelTrace}
	if lvl, err := lvlog.ParseLevel(os.Getenv("LVLOG_ZEROLOG_LEVEL")); err == nil {
		cfg.MinLevel = lvl
	}
	cfg.Console = os.Getenv("LVLOG_ZEROLOG_CONSOLE") == "1"
	cfg.ConsoleTimeFormat = os.Getenv("LVLOG_ZEROLOG_TIMEFORMAT")
	_, cfg.NoColor = os.LookupEnv("NO_COLOR")
	return cfg
}
