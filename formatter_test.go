package logbridge

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMessageFormatter_FieldKinds(t *testing.T) {
	r := Record{
		At:      testAt,
		Level:   LevelInfo,
		Message: "all kinds",
		Fields: []Field{
			Str("s", "v"),
			Int64("i", -3),
			Uint64("u", 7),
			Float64("f", 0.5),
			Bool("b", false),
			Dur("d", 250*time.Millisecond),
			Time("t", testAt),
			Err("e", errors.New("bad thing")),
			Bytes("raw", []byte{1, 2, 3}),
			Any("a", nil),
			Any("p", struct{ X int }{1}),
		},
	}
	got := MessageFormatter{}.Format(r)
	want := `all kinds s=v i=-3 u=7 f=0.5 b=false d=250ms t=2025-01-01T00:00:00Z e="bad thing" raw=len:3 a=null p={1}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestMessageFormatter_NoArgsLeavesVerbs(t *testing.T) {
	got := MessageFormatter{}.Format(NewRecord(testAt, LevelInfo, "100% done"))
	if got != "100% done" {
		t.Fatalf("got %q", got)
	}
}

func TestSimpleFormatter_CustomLayout(t *testing.T) {
	f := SimpleFormatter{TimeFormat: "15:04:05"}
	got := f.Format(Record{At: testAt, Level: LevelDebug, Message: "x=%d", Args: []any{1}, Fields: []Field{Str("k", "v")}})
	if got != "00:00:00 DEBUG x=1 k=v" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc(func(r Record) string { return strings.ToUpper(r.Message) })
	if got := f.Format(NewRecord(testAt, LevelInfo, "shout")); got != "SHOUT" {
		t.Fatalf("got %q", got)
	}
}
