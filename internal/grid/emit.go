package grid

import (
	"fmt"
	"strings"

	"github.com/cbegin/progmap-go/internal/degree"
)

// header precedes the first section block; the device treats lines
// starting with // as comments.
const header = `// ******************************************************
// Lines starting with this sign are comments.
// ******************************************************
`

const separator = "// ******************************************************"

// Quality rows 1..5 in grid order.
var qualityLabels = [5]string{"Triads", "7th", ">>9", ">>11", ">>13"}

// EmitParams carries the caller-tunable note arithmetic.
type EmitParams struct {
	StartNote   int
	RowStep     int
	LaneOffsets map[int]int // quality 1..5 -> vertical lane offset
}

// DefaultLaneOffsets returns the device's stock lane layout.
func DefaultLaneOffsets() map[int]int {
	return map[int]int{1: 0, 2: 1, 3: 2, 4: 3, 5: 8}
}

// SlotID computes the device address of one grid cell. Section ordinal
// and column both contribute in multiples of ten; the resulting
// overlap across columns and sections is the device's addressing
// contract and must not be simplified.
func SlotID(quality int, section Section, column, row int) int {
	return quality*100 + int(section)*10 + (column+1)*10 + row
}

// Note computes the MIDI note of one grid cell.
func (p EmitParams) Note(quality, row int) int {
	return p.StartNote + p.LaneOffsets[quality] + (row-1)*p.RowStep
}

// EmitMapping serializes the per-section column lists into the mapping
// text, sections in the given order, each column list normalized to
// five entries first. Any unresolvable degree aborts the whole
// emission; no partial text is returned.
func EmitMapping(cols map[Section][]degree.Degree, sections []Section, p EmitParams) (string, error) {
	lines := make([]string, 0, 64)
	lines = append(lines, header)
	for _, sec := range sections {
		block, err := emitSection(sec, CycleToFive(cols[sec]), p)
		if err != nil {
			return "", err
		}
		lines = append(lines, block...)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \n") + "\n", nil
}

func emitSection(sec Section, cols []degree.Degree, p EmitParams) ([]string, error) {
	lines := make([]string, 0, 5*6+1)
	for q := 1; q <= 5; q++ {
		lines = append(lines, fmt.Sprintf("// %s %s", sec.title(), qualityLabels[q-1]))
		for col, d := range cols {
			row, err := d.Row()
			if err != nil {
				return nil, err
			}
			lines = append(lines, fmt.Sprintf(" %d %d", SlotID(q, sec, col, row), p.Note(q, row)))
		}
	}
	lines = append(lines, separator)
	return lines, nil
}
