package writer

import (
	"bufio"
	"io"

	"go.uber.org/multierr"

	"github.com/wippyai/vcard"
	"github.com/wippyai/vcard/errors"
)

// RecordWarnings are the warnings of one record in a stream.
type RecordWarnings struct {
	Warnings []Warning
	// Index is the zero-based position of the record in the stream.
	Index int
}

// StreamWriter writes a sequence of records to one sink through a
// buffer. Records are atomic: a record that fails is not written, and
// the stream stays usable.
type StreamWriter struct {
	sink     io.Writer
	buf      *bufio.Writer
	w        *Writer
	warnings []RecordWarnings
	count    int
	closed   bool
}

// NewStreamWriter creates a stream writer with cfg.
func NewStreamWriter(sink io.Writer, cfg Config) (*StreamWriter, error) {
	buf := bufio.NewWriter(sink)
	w, err := NewWithConfig(buf, cfg)
	if err != nil {
		return nil, err
	}
	return &StreamWriter{sink: sink, buf: buf, w: w}, nil
}

// Writer returns the underlying record writer, for registering scribes
// or adjusting settings between records.
func (s *StreamWriter) Writer() *Writer { return s.w }

// Write serializes one record. Its warnings are kept if there are any.
func (s *StreamWriter) Write(rec *vcard.Record) error {
	if s.closed {
		return errors.Unsupported(errors.PhaseWrite, "write to closed stream")
	}
	index := s.count
	if err := s.w.Write(rec); err != nil {
		return err
	}
	s.count++
	if ws := s.w.Warnings(); len(ws) > 0 {
		s.warnings = append(s.warnings, RecordWarnings{Index: index, Warnings: ws})
	}
	return nil
}

// WriteAll writes every record, continuing past failures, and returns
// the combined errors.
func (s *StreamWriter) WriteAll(recs ...*vcard.Record) error {
	var err error
	for _, rec := range recs {
		err = multierr.Append(err, s.Write(rec))
	}
	return err
}

// Warnings returns the per-record warnings collected so far.
func (s *StreamWriter) Warnings() []RecordWarnings {
	return append([]RecordWarnings(nil), s.warnings...)
}

// Count returns the number of records written.
func (s *StreamWriter) Count() int { return s.count }

// Flush writes buffered data to the sink.
func (s *StreamWriter) Flush() error {
	if err := s.buf.Flush(); err != nil {
		return errors.SinkIO(err)
	}
	return nil
}

// Close flushes and, if the sink is an io.Closer, closes it.
func (s *StreamWriter) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.Flush()
	if c, ok := s.sink.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			err = multierr.Append(err, errors.SinkIO(cerr))
		}
	}
	return err
}
