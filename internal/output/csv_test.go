package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yumeno/kokoro/internal/emotion"
)

func TestScoresCSV(t *testing.T) {
	res := emotion.NewAnalyzer().Analyze("会いたい", emotion.DefaultLexicon(), false)

	var buf bytes.Buffer
	if err := ScoresCSV(&buf, res); err != nil {
		t.Fatalf("ScoresCSV() error = %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("CSV output must start with a UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimSpace(string(out[3:])), "\n")
	if len(lines) != 6 {
		t.Fatalf("CSV has %d lines, want header + 5 categories", len(lines))
	}
	if lines[0] != "Category,Normalized(%)" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "affection,100.0" {
		t.Errorf("first row = %q, want affection at 100.0", lines[1])
	}
	if lines[3] != "joy,0.0" {
		t.Errorf("joy row = %q, want 0.0", lines[3])
	}
}

func TestTableTo_UnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, 42); err == nil {
		t.Error("TableTo() accepted an unsupported type")
	}
}

func TestOutput_UnknownFormat(t *testing.T) {
	if err := Output("yaml", nil); err == nil {
		t.Error("Output() accepted an unknown format")
	}
}
