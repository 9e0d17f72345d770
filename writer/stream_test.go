package writer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/wippyai/vcard"
	vcerrors "github.com/wippyai/vcard/errors"
)

type closingBuffer struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (c *closingBuffer) Close() error {
	c.closed = true
	return c.closeErr
}

func person(name string) *vcard.Record {
	rec := vcard.New()
	rec.SetFormattedName(name)
	return rec
}

func TestStreamWriter(t *testing.T) {
	cfg := DefaultConfig(vcard.V40)
	cfg.AddProdID = false

	var sink closingBuffer
	s, err := NewStreamWriter(&sink, cfg)
	if err != nil {
		t.Fatal(err)
	}

	broken := person("Broken")
	broken.Add(&luckyNum{num: 1})

	noName := vcard.New()
	noName.AddNote("anonymous")

	err = s.WriteAll(person("Alice"), broken, noName, person("Bob"))
	if !errors.Is(err, vcerrors.ErrUnregisteredProperty) {
		t.Fatalf("WriteAll err = %v, want unregistered property", err)
	}
	if len(multierr.Errors(err)) != 1 {
		t.Errorf("errors = %v, want 1", multierr.Errors(err))
	}
	if s.Count() != 3 {
		t.Errorf("Count = %d, want 3", s.Count())
	}

	if sink.Len() != 0 {
		t.Error("records reached the sink before Flush")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !sink.closed {
		t.Error("sink not closed")
	}

	out := sink.String()
	if n := strings.Count(out, "BEGIN:VCARD\r\n"); n != 3 {
		t.Errorf("records = %d, want 3:\n%s", n, out)
	}
	if strings.Contains(out, "Broken") {
		t.Error("failed record was partially written")
	}

	warnings := s.Warnings()
	if len(warnings) != 1 || warnings[0].Index != 1 || len(warnings[0].Warnings) != 1 {
		t.Errorf("warnings = %+v, want one for record 1", warnings)
	}

	if err := s.Write(person("late")); err == nil {
		t.Error("write after Close accepted")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestStreamWriterCloseError(t *testing.T) {
	sink := &closingBuffer{closeErr: errors.New("close failed")}
	s, err := NewStreamWriter(sink, DefaultConfig(vcard.V30))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write(person("Alice")); err != nil {
		t.Fatal(err)
	}
	err = s.Close()
	if !errors.Is(err, vcerrors.ErrSinkIO) {
		t.Fatalf("Close err = %v, want sink failure", err)
	}
	if !strings.Contains(sink.String(), "FN:Alice") {
		t.Error("buffered record not flushed before close")
	}
}

func TestStreamWriterInvalidConfig(t *testing.T) {
	cfg := DefaultConfig(vcard.V30)
	cfg.Newline = ""
	if _, err := NewStreamWriter(&bytes.Buffer{}, cfg); !errors.Is(err, vcerrors.ErrInvalidConfig) {
		t.Fatalf("err = %v, want invalid config", err)
	}
}
