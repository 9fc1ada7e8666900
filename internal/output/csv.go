package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/yumeno/kokoro/internal/emotion"
)

// utf8BOM keeps spreadsheet apps from misreading the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ScoresCSV writes the normalized scores as a two-column CSV table,
// prefixed with a UTF-8 byte-order mark.
func ScoresCSV(w io.Writer, res *emotion.Result) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Category", "Normalized(%)"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, c := range emotion.Categories {
		record := []string{string(c), fmt.Sprintf("%.1f", res.Normalized[c])}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
