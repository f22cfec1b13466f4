package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func summary() Summary {
	return Summary{
		Start:        time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC),
		IncludeStart: true,
		Days:         10,
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, summary()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "start,end,include_start,days\n2023-01-01,2023-01-10,true,10\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv output:\n%s", buf.String())
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, summary()); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Fatal("expected a PDF header")
	}
	if buf.Len() < 500 {
		t.Fatalf("suspiciously small pdf: %d bytes", buf.Len())
	}
}
