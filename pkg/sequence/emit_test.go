package sequence

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmitJSONL(t *testing.T) {
	records := []Record{
		{ID: 1, Timestamp: "2023-01-12, 13:01:20", Colour: "red", Material: "plastic"},
		{ID: 2, Timestamp: "2023-01-12, 13:01:21", Colour: "blue"},
	}

	var buf bytes.Buffer
	if err := EmitJSONL(&buf, records); err != nil {
		t.Fatalf("emit: %v", err)
	}

	want := `{"id":1,"timestamp":"2023-01-12, 13:01:20","colour":"red","material":"plastic"}` + "\n" +
		`{"id":2,"timestamp":"2023-01-12, 13:01:21","colour":"blue"}` + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestEmitJSONLOmitsAbsentAttributes(t *testing.T) {
	var buf bytes.Buffer
	if err := EmitJSONL(&buf, []Record{{ID: 1, Timestamp: "2023-01-12, 13:01:20"}}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	line := buf.String()
	if strings.Contains(line, "colour") || strings.Contains(line, "material") {
		t.Fatalf("absent attributes leaked into output: %s", line)
	}
}

func TestEmitJSONLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EmitJSONL(&buf, nil); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
