package logbridgetest

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/trickstertwo/logbridge"
)

func TestPackage(t *testing.T) {
	suite.Run(t, &MocksSuite{})
}

type MocksSuite struct {
	suite.Suite
}

var at = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func (s *MocksSuite) TestMockHostCallStack() {
	host := &MockHost{}
	host.AllowAny("Error", "Warn", "Info", "Debug")

	host.Info("one", nil)
	s.Equal("one", host.LastCall())
	host.Warn("two", errors.New("x"))
	s.Equal("two", host.LastCall())
	s.Equal("one", host.Call(0))
	s.Len(host.Calls, 2)

	host.Clear()
	s.Empty(host.Messages())
	s.Empty(host.Calls)
}

func (s *MocksSuite) TestMockHostWithBridge() {
	host := &MockHost{}
	host.SetVerbosity(false, true, true)
	cause := errors.New("disk full")
	host.On("Error", "[gen]: write failed", cause).Once()
	host.On("Info", "[gen]: done", nil).Once()

	br, err := logbridge.New(host, "gen", "UTF-8")
	s.Require().NoError(err)
	s.Equal(logbridge.LevelInfo, br.Level())

	br.Publish(logbridge.Record{At: at, Level: logbridge.LevelDebug, Message: "dropped"})
	br.Publish(logbridge.Record{At: at, Level: logbridge.LevelError, Message: "write failed", Err: cause})
	br.Publish(logbridge.Record{At: at, Level: logbridge.LevelInfo, Message: "done"})

	host.AssertExpectations(s.T())
	host.AssertNotCalled(s.T(), "Debug", mock.Anything, mock.Anything)
}

func (s *MocksSuite) TestMockHostUnsupportedEncoding() {
	host := &MockHost{}
	host.SetVerbosity(true, true, true)
	host.On("Error", "Could not use encoding 'NOPE-1'", mock.Anything).Once()

	br, err := logbridge.New(host, "", "NOPE-1")
	s.Require().NoError(err)
	s.Equal("UTF-8", br.Encoding())
	host.AssertNumberOfCalls(s.T(), "Error", 1)
}

func (s *MocksSuite) TestMessagesMatch() {
	host := &MockHost{}
	host.AllowAny("Info", "Debug")
	host.Info("[xjc]: generated 3 files", nil)
	host.Debug("[xjc]: parsing schema a.xsd", nil)

	s.True(host.MessagesMatch([]string{`\[xjc\]: parsing schema .*\.xsd`, `\[xjc\]: generated \d+ files`}))
	s.False(host.MessagesMatch([]string{"nothing like this"}))
	s.False(host.MessagesMatch([]string{"("}))
}

func (s *MocksSuite) TestRecordingHostConcurrent() {
	host := NewRecordingHostAt(logbridge.LevelDebug)
	br, err := logbridge.New(host, "p", "UTF-8")
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				br.Publish(logbridge.NewRecord(at, logbridge.LevelWarn, "w"))
			}
		}()
	}
	wg.Wait()

	s.Len(host.Calls(), 100)
	for _, m := range host.Methods() {
		s.Equal("warn", m)
	}
	host.Reset()
	s.Empty(host.Calls())
}

func (s *MocksSuite) TestRecordingHostAtLevels() {
	cases := []struct {
		level logbridge.Level
		want  logbridge.Level
	}{
		{logbridge.LevelTrace, logbridge.LevelTrace},
		{logbridge.LevelDebug, logbridge.LevelTrace},
		{logbridge.LevelInfo, logbridge.LevelInfo},
		{logbridge.LevelWarn, logbridge.LevelWarn},
		{logbridge.LevelError, logbridge.LevelError},
	}
	for _, tc := range cases {
		got, err := logbridge.LevelFor(NewRecordingHostAt(tc.level))
		s.NoError(err)
		s.Equal(tc.want, got, "host at %s", tc.level)
	}
}
