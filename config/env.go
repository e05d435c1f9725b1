package config

import (
	"os"
	"strconv"
)

// FromEnv reads a Config from the environment:
//
//	LVLOG_LEVEL          global level (default trace)
//	LVLOG_QUIET          suppress the console (strconv.ParseBool)
//	LVLOG_CONSOLE_LEVEL  console level
//	LVLOG_COLOR          auto|always|never
//	LVLOG_FILE           append to this file
//	LVLOG_FILE_LEVEL     level of LVLOG_FILE
func FromEnv() *Config {
	c := &Config{
		Level:        os.Getenv("LVLOG_LEVEL"),
		ConsoleLevel: os.Getenv("LVLOG_CONSOLE_LEVEL"),
		Color:        os.Getenv("LVLOG_COLOR"),
	}
	c.Quiet, _ = strconv.ParseBool(os.Getenv("LVLOG_QUIET"))
	if path := os.Getenv("LVLOG_FILE"); path != "" {
		c.Files = append(c.Files, File{Path: path, Level: os.Getenv("LVLOG_FILE_LEVEL")})
	}
	return c
}
