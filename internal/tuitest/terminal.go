package tuitest

import (
	"bytes"
	"io"
)

// terminalQuery pairs a capability probe the program may send with the reply
// a real terminal would give. Without replies lipgloss stalls while detecting
// the background color.
type terminalQuery struct {
	probe []byte
	reply []byte
}

var terminalQueries = []terminalQuery{
	{probe: []byte("\x1b[6n"), reply: []byte("\x1b[1;1R")},
	{probe: []byte("\x1b]10;?\x07"), reply: []byte("\x1b]10;rgb:ebeb/dbdb/b2b2\x07")},
	{probe: []byte("\x1b]10;?\x1b\\"), reply: []byte("\x1b]10;rgb:ebeb/dbdb/b2b2\x1b\\")},
	{probe: []byte("\x1b]11;?\x07"), reply: []byte("\x1b]11;rgb:2828/2828/2828\x07")},
	{probe: []byte("\x1b]11;?\x1b\\"), reply: []byte("\x1b]11;rgb:2828/2828/2828\x1b\\")},
}

const (
	responderMaxBuffer = 256
	responderTail      = 64
)

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, 128)}
}

// Process scans chunk for probes and answers each one. A short tail is kept
// so probes split across reads are still seen.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerOne() {
	}
	if len(tr.buf) > responderMaxBuffer {
		tr.buf = tr.buf[len(tr.buf)-responderTail:]
	}
}

func (tr *terminalResponder) answerOne() bool {
	for _, q := range terminalQueries {
		idx := bytes.Index(tr.buf, q.probe)
		if idx < 0 {
			continue
		}
		tr.buf = tr.buf[idx+len(q.probe):]
		_, _ = tr.w.Write(q.reply)
		return true
	}
	return false
}
