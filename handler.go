package logbridge

// Handler is the capability a generic logging facility requires of a
// registered sink. Publish must not fail; Flush and Close report
// sink-specific errors.
type Handler interface {
	Publish(r Record)
	Flush() error
	Close() error
}

// HandlerFunc turns a function into a Handler with no-op Flush and Close.
type HandlerFunc func(Record)

func (f HandlerFunc) Publish(r Record) { f(r) }
func (f HandlerFunc) Flush() error     { return nil }
func (f HandlerFunc) Close() error     { return nil }
