package cli

import (
	"github.com/pkg/errors"

	"github.com/trickstertwo/logbridge"
	logrusadapter "github.com/trickstertwo/logbridge/adapter/logrus"
	"github.com/trickstertwo/logbridge/adapter/olog"
	slogadapter "github.com/trickstertwo/logbridge/adapter/slog"
	zapadapter "github.com/trickstertwo/logbridge/adapter/zap"
	zerologadapter "github.com/trickstertwo/logbridge/adapter/zerolog"
)

// Backends lists the names NewHost accepts.
var Backends = []string{"zap", "zerolog", "logrus", "slog", "olog"}

// NewHost builds the production host logger for cfg.Backend.
func NewHost(cfg HostConfig) (logbridge.HostLogger, error) {
	json := cfg.Format == "json"
	switch cfg.Backend {
	case "zap":
		h, _ := zapadapter.NewHost(zapadapter.Config{
			Writer:   cfg.Writer,
			MinLevel: cfg.MinLevel,
			Console:  !json,
		})
		return h, nil
	case "zerolog":
		return zerologadapter.NewHost(zerologadapter.Config{
			Writer:   cfg.Writer,
			MinLevel: cfg.MinLevel,
			Console:  !json,
		}), nil
	case "logrus":
		format := logrusadapter.TextFormat
		if json {
			format = logrusadapter.JSONFormat
		}
		return logrusadapter.NewHost(logrusadapter.Config{
			Writer:   cfg.Writer,
			MinLevel: cfg.MinLevel,
			Format:   format,
		}), nil
	case "slog":
		if json {
			return slogadapter.NewJSONHost(cfg.Writer, cfg.MinLevel, nil), nil
		}
		return slogadapter.NewTextHost(cfg.Writer, cfg.MinLevel, nil), nil
	case "olog", "":
		format := olog.FormatText
		if json {
			format = olog.FormatJSON
		}
		return olog.NewHost(olog.Config{
			Writer:   cfg.Writer,
			MinLevel: cfg.MinLevel,
			Format:   format,
		}), nil
	}
	return nil, errors.Errorf("unknown backend %q (want one of %v)", cfg.Backend, Backends)
}
