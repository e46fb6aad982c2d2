package logbridge

// HostLogger is the line-oriented sink a Bridge forwards into. It is owned by
// the caller; a Bridge only borrows it. err is the attached cause, nil when
// the record carries none.
type HostLogger interface {
	Error(msg string, err error)
	Warn(msg string, err error)
	Info(msg string, err error)
	Debug(msg string, err error)

	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
}

// LevelFor returns the finest level host accepts, checked most verbose first:
// debug → LevelTrace, info → LevelInfo, warn → LevelWarn, otherwise LevelError.
// The flags are not assumed to be monotonic; the order above always wins.
func LevelFor(host HostLogger) (Level, error) {
	if host == nil {
		return LevelError, invalidArg("host", "must not be nil")
	}
	switch {
	case host.IsDebugEnabled():
		return LevelTrace, nil
	case host.IsInfoEnabled():
		return LevelInfo, nil
	case host.IsWarnEnabled():
		return LevelWarn, nil
	default:
		return LevelError, nil
	}
}

// MustLevelFor is LevelFor for hosts already known to be non-nil.
func MustLevelFor(host HostLogger) Level {
	l, err := LevelFor(host)
	if err != nil {
		panic(err)
	}
	return l
}

// dispatch sends msg to exactly one host method chosen by level.
func dispatch(host HostLogger, level Level, msg string, err error) {
	switch {
	case level >= LevelError:
		host.Error(msg, err)
	case level >= LevelWarn:
		host.Warn(msg, err)
	case level >= LevelInfo:
		host.Info(msg, err)
	default:
		host.Debug(msg, err)
	}
}
