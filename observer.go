package logbridge

// Observer pattern

// Observer is notified for each emitted record after all handlers ran.
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(r Record)
}

// ObserverFunc adapter.
type ObserverFunc func(Record)

func (f ObserverFunc) OnLog(r Record) { f(r) }
