package olog

import (
	"github.com/trickstertwo/logbridge"
	"github.com/trickstertwo/logbridge/internal/enc"
)

// Pre-encode bound fields for both formats to avoid per-line overhead.

func encodeBoundText(bound []logbridge.Field) []byte {
	if len(bound) == 0 {
		return nil
	}
	buf := enc.Get(256)
	for i := range bound {
		appendTextField(buf, &bound[i]) // leading space included
	}
	cp := make([]byte, buf.Len())
	copy(cp, buf.B)
	enc.Put(buf)
	return cp
}

func encodeBoundJSON(bound []logbridge.Field, opts Options) []byte {
	if len(bound) == 0 {
		return nil
	}
	buf := enc.Get(256)
	for i := range bound {
		appendJSONField(buf, &bound[i], opts)
	}
	cp := make([]byte, buf.Len())
	copy(cp, buf.B)
	enc.Put(buf)
	return cp
}
