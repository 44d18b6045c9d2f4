package printer

import (
	"bytes"
	"strings"
	"testing"
)

func TestKeyValuePadsToWidth(t *testing.T) {
	d := NewDocument(Width58mm)
	d.KeyValue("Subtotal:", "6500.00")

	out := d.Bytes()
	idx := bytes.IndexByte(out, LF)
	if idx < 0 {
		t.Fatalf("expected a line feed after the key value line")
	}
	// Skip the init sequence at the start of the buffer.
	line := string(out[2:idx])
	if len(line) != Width58mm {
		t.Fatalf("expected line of width %d, got %d (%q)", Width58mm, len(line), line)
	}
	if !strings.HasPrefix(line, "Subtotal:") {
		t.Fatalf("key not left aligned: %q", line)
	}
	if !strings.HasSuffix(line, "6500.00") {
		t.Fatalf("value not right aligned: %q", line)
	}
}

func TestKeyValueNeverJoinsKeyAndValue(t *testing.T) {
	d := NewDocument(Width58mm)
	d.KeyValue(strings.Repeat("k", 30), "12345.00")

	if !bytes.Contains(d.Bytes(), []byte("k 12345.00")) {
		t.Fatalf("expected at least one space between key and value")
	}
}

func TestItemLineWrapsLongNames(t *testing.T) {
	d := NewDocument(Width58mm)
	d.ItemLine(2, "Extraordinarily Long Dish Name With Garnish", "450.00")

	lines := bytes.Split(d.Bytes(), []byte{LF})
	if len(lines) < 3 {
		t.Fatalf("expected name and amount on separate lines, got %d lines", len(lines))
	}
	if !bytes.Contains(lines[0], []byte("2x Extraordinarily")) {
		t.Fatalf("first line should carry the quantity and name: %q", lines[0])
	}
	if !bytes.HasSuffix(lines[1], []byte("450.00")) {
		t.Fatalf("second line should right align the amount: %q", lines[1])
	}
}

func TestSeparatorFillsWidth(t *testing.T) {
	d := NewDocument(Width80mm)
	d.Separator('-')

	want := strings.Repeat("-", Width80mm)
	if !bytes.Contains(d.Bytes(), []byte(want)) {
		t.Fatalf("separator should span the full %d character width", Width80mm)
	}
}

func TestDocumentStartsWithInit(t *testing.T) {
	d := NewDocument(0)
	out := d.Bytes()
	if len(out) < 2 || out[0] != ESC || out[1] != '@' {
		t.Fatalf("document should start with ESC @, got % x", out[:2])
	}
	if d.width != Width58mm {
		t.Fatalf("zero width should default to %d, got %d", Width58mm, d.width)
	}
}

func TestPartialCutEmitsCutCommand(t *testing.T) {
	d := NewDocument(Width58mm)
	d.PartialCut()

	if !bytes.Contains(d.Bytes(), []byte{GS, 'V', 1}) {
		t.Fatalf("expected GS V 1 partial cut sequence")
	}
}
