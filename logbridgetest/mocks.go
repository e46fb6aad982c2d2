// Package logbridgetest provides host logger doubles for tests of code that
// publishes through a logbridge.Bridge.
package logbridgetest

import (
	"fmt"
	"log"
	"regexp"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/trickstertwo/logbridge"
)

var _ logbridge.HostLogger = (*MockHost)(nil)

// MockHost is a testify mock of logbridge.HostLogger.
type MockHost struct {
	mock.Mock

	mu          sync.Mutex
	stringCalls []string
}

// AllowAny registers the emission methods (Error, Warn, Info, Debug) so they
// accept any message and cause.
func (m *MockHost) AllowAny(methods ...string) {
	for _, method := range methods {
		m.On(method, mock.AnythingOfType("string"), mock.Anything)
	}
}

// SetVerbosity answers the three verbosity queries with fixed values.
// The queries are optional: tests that never construct a bridge may skip them.
func (m *MockHost) SetVerbosity(debug, info, warn bool) {
	m.On("IsDebugEnabled").Return(debug).Maybe()
	m.On("IsInfoEnabled").Return(info).Maybe()
	m.On("IsWarnEnabled").Return(warn).Maybe()
}

// Clear removes all calls history
func (m *MockHost) Clear() {
	m.mu.Lock()
	m.stringCalls = make([]string, 0)
	m.mu.Unlock()
	m.Calls = make([]mock.Call, 0)
}

// Call returns the message of the emission call at index.
func (m *MockHost) Call(index int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stringCalls[index]
}

// LastCall returns the message of the most recent emission call.
func (m *MockHost) LastCall() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stringCalls[len(m.stringCalls)-1]
}

// Messages returns a copy of every emitted message in call order.
func (m *MockHost) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.stringCalls...)
}

// MessagesMatch reports whether every regex matches at least one emitted
// message, in no particular order. Patterns are anchored.
func (m *MockHost) MessagesMatch(matchRgx []string) bool {
	msgs := m.Messages()
	for _, rgx := range matchRgx {
		rxObj, err := regexp.Compile("^" + rgx + "$")
		if err != nil {
			log.Output(2, fmt.Sprintf("MockHost.MessagesMatch: could not compile regex: %s", rgx))
			return false
		}
		found := false
		for _, msg := range msgs {
			if found = rxObj.MatchString(msg); found {
				break
			}
		}
		if !found {
			log.Output(2, fmt.Sprintf("%s did not match any message", rgx))
			return false
		}
	}
	return true
}

func (m *MockHost) record(msg string) {
	m.mu.Lock()
	m.stringCalls = append(m.stringCalls, msg)
	m.mu.Unlock()
}

func (m *MockHost) Error(msg string, err error) {
	m.record(msg)
	m.Called(msg, err)
}

func (m *MockHost) Warn(msg string, err error) {
	m.record(msg)
	m.Called(msg, err)
}

func (m *MockHost) Info(msg string, err error) {
	m.record(msg)
	m.Called(msg, err)
}

func (m *MockHost) Debug(msg string, err error) {
	m.record(msg)
	m.Called(msg, err)
}

func (m *MockHost) IsDebugEnabled() bool { return m.Called().Bool(0) }
func (m *MockHost) IsInfoEnabled() bool  { return m.Called().Bool(0) }
func (m *MockHost) IsWarnEnabled() bool  { return m.Called().Bool(0) }
