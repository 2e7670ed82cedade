package genre

import (
	"fmt"
	"strings"

	"github.com/cbegin/progmap-go/internal/degree"
	"github.com/cbegin/progmap-go/internal/theory"
)

// ChordTablePlaceholder is the marker a curated sidecar uses to
// request a realized chord table.
const ChordTablePlaceholder = "{{CHORD_TABLE}}"

// ChordTable renders up to the first five column degrees as a realized
// chord table in the given key. A degree that cannot be realized gets
// an (n/a) row rather than failing the document.
func ChordTable(cols []degree.Degree, key theory.Key) string {
	lines := []string{
		"| Col | Degree | Roman | Root | Pitches |",
		"|---:|:------:|:-----:|:----:|:--------|",
	}
	if len(cols) > 5 {
		cols = cols[:5]
	}
	for i, d := range cols {
		ch, err := key.Realize(d)
		if err != nil {
			lines = append(lines, fmt.Sprintf("| %d | %s | (n/a) | (n/a) | (n/a) |", i+1, d))
			continue
		}
		names := make([]string, len(ch.Pitches))
		for j, p := range ch.Pitches {
			names[j] = p.String()
		}
		lines = append(lines, fmt.Sprintf("| %d | %s | %s | %s | %s |",
			i+1, d, ch.Figure, ch.Root.Name(), strings.Join(names, " ")))
	}
	return strings.Join(lines, "\n") + "\n"
}

// BuildSidecar substitutes the chord-table placeholder into the
// curated markdown. The curated document is the source of truth: when
// it carries no placeholder it is returned untouched (newline
// terminated), and an empty chordTable simply erases the placeholder.
func BuildSidecar(curated, chordTable string) string {
	if !strings.Contains(curated, ChordTablePlaceholder) {
		if strings.HasSuffix(curated, "\n") {
			return curated
		}
		return curated + "\n"
	}
	return strings.ReplaceAll(curated, ChordTablePlaceholder, chordTable)
}
