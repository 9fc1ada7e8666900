package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yumeno/kokoro/internal/emotion"
	"github.com/yumeno/kokoro/internal/history"
)

// GrowthStatus is the view of the pet growth state rendered by the
// growth command.
type GrowthStatus struct {
	Level   int `json:"level"`
	Points  int `json:"points"`
	Into    int `json:"points_into_level"`
	Step    int `json:"points_per_level"`
	Commits int `json:"commits"`
}

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *emotion.Result:
		return resultTable(w, v)
	case []history.Item:
		return historyTable(w, v)
	case *history.Item:
		return historyDetail(w, v)
	case *GrowthStatus:
		return growthTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func resultTable(w io.Writer, res *emotion.Result) error {
	table := tablewriter.NewTable(w)
	table.Header("CATEGORY", "LABEL", "SCORE", "BAND")
	for _, c := range emotion.Categories {
		score := res.Normalized[c]
		table.Append([]string{
			string(c),
			c.Label(),
			fmt.Sprintf("%.1f", score),
			string(emotion.BandFor(score)),
		})
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(res.Leaders) > 0 {
		names := make([]string, len(res.Leaders))
		for i, c := range res.Leaders {
			names[i] = string(c)
		}
		fmt.Fprintf(w, "Leaders: %s\n", strings.Join(names, ", "))
	} else {
		fmt.Fprintln(w, "Leaders: (none)")
	}
	return nil
}

func historyTable(w io.Writer, items []history.Item) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No history items found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("ID", "TIME", "LEADERS", "PIN", "SNIPPET")
	for _, it := range items {
		names := make([]string, len(it.Leaders))
		for i, c := range it.Leaders {
			names[i] = string(c)
		}
		pin := ""
		if it.Pinned {
			pin = "*"
		}
		table.Append([]string{
			it.ID,
			it.Timestamp,
			strings.Join(names, ","),
			pin,
			truncate(it.Snippet, 40),
		})
	}
	return table.Render()
}

func historyDetail(w io.Writer, it *history.Item) error {
	fmt.Fprintf(w, "ID:        %s\n", it.ID)
	fmt.Fprintf(w, "Time:      %s\n", it.Timestamp)
	fmt.Fprintf(w, "Pinned:    %t\n", it.Pinned)
	fmt.Fprintf(w, "Lexicon:   %s\n", it.LexiconHash)
	fmt.Fprintf(w, "Snippet:   %s\n", it.Snippet)
	fmt.Fprintln(w)

	table := tablewriter.NewTable(w)
	table.Header("CATEGORY", "SCORE", "TOP TERMS")
	for i, c := range emotion.Categories {
		var parts []string
		for _, ts := range it.TopTerms[c] {
			parts = append(parts, fmt.Sprintf("%s (%.1f)", ts.Term, ts.Value))
		}
		table.Append([]string{
			string(c),
			fmt.Sprintf("%.1f", it.Normalized[i]),
			strings.Join(parts, ", "),
		})
	}
	return table.Render()
}

func growthTable(w io.Writer, st *GrowthStatus) error {
	fmt.Fprintf(w, "Level:   %d\n", st.Level)
	fmt.Fprintf(w, "Points:  %d (%d/%d to next level)\n", st.Points, st.Into, st.Step)
	fmt.Fprintf(w, "Commits: %d\n", st.Commits)
	return nil
}

// truncate shortens a string to maxLen runes, adding ellipsis
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
