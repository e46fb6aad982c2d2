package zerologadapter

import (
	"io"
	"os"

	"github.com/trickstertwo/logbridge"
)

// Env:
//
//	LOGBRIDGE_LEVEL   : trace|debug|info|warn|error (default info)
//	LOGBRIDGE_CONSOLE : 1 enables ConsoleWriter (pretty output)
//	LOGBRIDGE_CALLER  : 1 includes caller
func NewFromEnv(w io.Writer) *Host {
	return NewHost(configFromEnv(w, os.Getenv))
}

func configFromEnv(w io.Writer, getenv func(string) string) Config {
	level, err := logbridge.ParseLevel(getenv("LOGBRIDGE_LEVEL"))
	if err != nil {
		level = logbridge.LevelInfo
	}
	return Config{
		Writer:   w,
		MinLevel: level,
		Console:  getenv("LOGBRIDGE_CONSOLE") == "1",
		Caller:   getenv("LOGBRIDGE_CALLER") == "1",
	}
}
