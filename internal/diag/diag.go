// Package diag carries structured data-quality events out of the
// extraction and normalization pipelines. Pipelines report and keep
// going; nothing here returns an error.
package diag

import "log/slog"

// Severity classifies an event. Warning is the working level for data
// anomalies; Error is reserved for failures that lose a record.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Event codes. Stable strings so downstream tooling can count them.
const (
	CodeMissingField     = "missing_field"
	CodeUnknownCountry   = "unknown_country"
	CodeUnknownCategory  = "unknown_category"
	CodeUnknownCaliber   = "unknown_caliber"
	CodeRecordDropped    = "record_dropped"
	CodeUnparseableValue = "unparseable_value"
	CodeFetchFailed      = "fetch_failed"
	CodeImageUnreachable = "image_unreachable"
	CodeCacheCorrupt     = "cache_corrupt"
)

// Event is one reported anomaly.
type Event struct {
	Severity Severity
	Code     string
	Message  string
	Fields   map[string]any
}

// Reporter receives anomaly events from the pipelines.
type Reporter interface {
	Report(e Event)
}

// Warn reports a warning-severity event. Reporters may be nil; a nil
// reporter drops the event.
func Warn(r Reporter, code, msg string, fields map[string]any) {
	if r == nil {
		return
	}
	r.Report(Event{Severity: SeverityWarning, Code: code, Message: msg, Fields: fields})
}

// SlogReporter writes events to a structured logger.
type SlogReporter struct {
	log *slog.Logger
}

func NewSlogReporter(log *slog.Logger) *SlogReporter {
	return &SlogReporter{log: log}
}

func (r *SlogReporter) Report(e Event) {
	attrs := make([]any, 0, 2+2*len(e.Fields))
	attrs = append(attrs, "code", e.Code)
	for k, v := range e.Fields {
		attrs = append(attrs, k, v)
	}
	if e.Severity == SeverityError {
		r.log.Error(e.Message, attrs...)
		return
	}
	r.log.Warn(e.Message, attrs...)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Report(Event) {}

// Collector retains every event in order. Not safe for concurrent use;
// it exists for tests and one-shot audits.
type Collector struct {
	Events []Event
}

func (c *Collector) Report(e Event) {
	c.Events = append(c.Events, e)
}

// Count returns how many collected events carry the given code.
func (c *Collector) Count(code string) int {
	n := 0
	for _, e := range c.Events {
		if e.Code == code {
			n++
		}
	}
	return n
}
