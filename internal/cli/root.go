// Package cli provides the logbridge command.
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trickstertwo/logbridge"
)

// HostConfig selects and configures the backend host logger.
type HostConfig struct {
	Backend  string
	MinLevel logbridge.Level
	Format   string
	Writer   io.Writer
}

// Dependencies holds all injectable dependencies for the command.
type Dependencies struct {
	// HostFactory creates the host logger lines are bridged into.
	HostFactory func(cfg HostConfig) (logbridge.HostLogger, error)

	Stdin  io.Reader
	Stdout io.Writer
}

type options struct {
	backend  string
	prefix   string
	encoding string
	level    string
	format   string
}

var defaultDeps *Dependencies

// SetDefaultDependencies sets the dependencies used by NewRootCmd.
func SetDefaultDependencies(deps *Dependencies) {
	defaultDeps = deps
}

// NewRootCmd creates the root command with the default dependencies.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(defaultDeps)
}

// NewRootCmdWithDeps creates the root command with explicit dependencies.
func NewRootCmdWithDeps(deps *Dependencies) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "logbridge",
		Short: "Bridge log lines from stdin into a host logger",
		Long: `logbridge reads "LEVEL message" lines from stdin and publishes each one
through a bridge into the selected backend logger.

The backend's verbosity decides which lines pass; lines whose first word is
not a level are logged at INFO.

Examples:
  # Bridge into zap JSON output with a module prefix
  printf 'warn disk almost full\n' | logbridge --backend zap --format json --prefix xjc

  # Transcode to Latin-1 and only show warnings and above
  logbridge --encoding ISO-8859-1 --level warn < build.log`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, deps)
		},
	}

	rootCmd.Flags().StringVarP(&opts.backend, "backend", "b", "olog",
		"Host logger backend: zap, zerolog, logrus, slog or olog")
	rootCmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "",
		"Prefix rendered as \"[prefix]: \" before every message")
	rootCmd.Flags().StringVarP(&opts.encoding, "encoding", "e", "UTF-8",
		"Output text encoding (IANA name)")
	rootCmd.Flags().StringVarP(&opts.level, "level", "l", "info",
		"Backend minimum level: trace, debug, info, warn or error")
	rootCmd.Flags().StringVarP(&opts.format, "format", "f", "text",
		"Backend output format: text or json")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options, deps *Dependencies) error {
	if deps == nil || deps.HostFactory == nil {
		return errors.New("dependencies not configured")
	}

	minLevel, err := logbridge.ParseLevel(opts.level)
	if err != nil {
		return errors.Wrap(err, "--level")
	}
	if opts.format != "text" && opts.format != "json" {
		return errors.Errorf("--format: unknown format %q", opts.format)
	}

	stdin := deps.Stdin
	if stdin == nil {
		stdin = cmd.InOrStdin()
	}
	stdout := deps.Stdout
	if stdout == nil {
		stdout = cmd.OutOrStdout()
	}

	host, err := deps.HostFactory(HostConfig{
		Backend:  opts.backend,
		MinLevel: minLevel,
		Format:   opts.format,
		Writer:   stdout,
	})
	if err != nil {
		return errors.Wrapf(err, "backend %q", opts.backend)
	}

	logger, err := logbridge.NewBuilder().
		WithBridge(host, opts.prefix, opts.encoding).
		WithMinLevel(logbridge.LevelTrace).
		Build()
	if err != nil {
		return errors.Wrap(err, "bridge")
	}
	defer logger.Close()

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		level, msg := ParseLine(line)
		logger.At(level).Msg(msg)
	}
	if err := sc.Err(); err != nil {
		host.Error("reading stdin failed", err)
		return errors.Wrap(err, "read stdin")
	}
	return logger.Flush()
}

// ParseLine splits "LEVEL message". A line whose first word is not a level
// is returned whole at LevelInfo.
func ParseLine(line string) (logbridge.Level, string) {
	word, rest, _ := strings.Cut(line, " ")
	level, err := logbridge.ParseLevel(word)
	if err != nil {
		return logbridge.LevelInfo, line
	}
	return level, strings.TrimSpace(rest)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
