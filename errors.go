package logbridge

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument reports a missing or malformed constructor argument.
	ErrInvalidArgument = errors.New("logbridge: invalid argument")
	// ErrNoHandler is returned by Builder.Build when no handler was registered.
	ErrNoHandler = errors.New("logbridge: no handler configured")
)

func invalidArg(name, reason string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s %s", name, reason)
}
