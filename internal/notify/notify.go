// Package notify is the toast surface quiz components report through. The
// real sink lives in the front-end; server-side we log.
package notify

import "log"

type Sink interface {
	Success(msg string)
	Error(msg string)
}

// LogSink writes notifications to the standard logger.
type LogSink struct{}

func (LogSink) Success(msg string) { log.Printf("notify ok: %s", msg) }
func (LogSink) Error(msg string)   { log.Printf("notify error: %s", msg) }

// Discard drops everything. Useful in tests that assert on errors instead.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
