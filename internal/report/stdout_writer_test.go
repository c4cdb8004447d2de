package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestColorStdoutWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &ColorStdoutWriter{out: &buf}

	rep, err := Build(sampleRows(), 500)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := w.WriteReport(rep); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Tower Stress Report", "High-Risk (> 500):", "NRB-003", "Kasarani"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// The one high-risk tower renders red.
	if !strings.Contains(out, colorRed+"NRB-003"+colorReset) {
		t.Error("high-risk row not colorized red")
	}
}
