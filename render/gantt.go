package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvollmar/jssp-heuristics/instance"
)

// jobPalette cycles a fixed set of 256-color codes across jobs so the same
// job reads as the same color across every machine row. The codes are
// chosen for contrast against both light and dark terminal backgrounds.
var jobPalette = []string{"39", "208", "41", "199", "226", "63", "202", "34", "165", "33"}

func jobColor(job int) lipgloss.Color {
	return lipgloss.Color(jobPalette[job%len(jobPalette)])
}

// Gantt writes a per-machine timeline of sol to w: one row per machine, its
// operations drawn as colored blocks sized to scale(duration), labeled with
// the owning job id. It does not touch the §6 stdout contract — it is an
// additional, strictly human-facing view selected by the CLI's
// --format=pretty flag.
//
// Complexity: O(J*M*log(J)).
func Gantt(w io.Writer, inst instance.Instance, sol instance.Solution) error {
	_, err := io.WriteString(w, Render(inst, sol, 100))
	return err
}

// Render returns the Gantt view as a string. When Cmax exceeds targetWidth
// the timeline is scaled by targetWidth/Cmax columns per time unit;
// otherwise it uses 1 column per time unit and may render narrower than
// targetWidth. Every operation, including a zero-duration one, takes at
// least one column and widths are rounded, so a row can still come out
// wider than targetWidth.
func Render(inst instance.Instance, sol instance.Solution, targetWidth int) string {
	cmax := instance.Cmax(inst, sol)
	scale := 1.0
	if cmax > uint32(targetWidth) && targetWidth > 0 {
		scale = float64(targetWidth) / float64(cmax)
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	machineLabelStyle := lipgloss.NewStyle().Bold(true).Width(8)
	idleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Gantt (Cmax=%d)", cmax)))
	b.WriteByte('\n')

	byMachine := make([][]instance.OpID, inst.NMachines)
	for id := 0; id < inst.NOps(); id++ {
		m := inst.Machines[id]
		byMachine[m] = append(byMachine[m], id)
	}

	for m, ops := range byMachine {
		sort.Slice(ops, func(i, k int) bool { return sol.Start[ops[i]] < sol.Start[ops[k]] })

		b.WriteString(machineLabelStyle.Render(fmt.Sprintf("M%d", m)))

		var cursor uint32
		for _, id := range ops {
			op := inst.OpFromID(id)
			start, dur := sol.Start[id], inst.Durations[id]

			if start > cursor {
				idleCols := scaledCols(start-cursor, scale)
				b.WriteString(idleStyle.Render(strings.Repeat("·", idleCols)))
			}

			cols := scaledCols(dur, scale)
			if cols == 0 {
				cols = 1 // a zero-duration op still occupies a visible marker
			}
			block := fmt.Sprintf("J%d", op.Job)
			label := fitLabel(block, cols)
			b.WriteString(lipgloss.NewStyle().Foreground(jobColor(op.Job)).Bold(true).Render(label))

			cursor = start + dur
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// scaledCols converts a duration into a column count under scale, with a
// floor of 1 column for any strictly positive duration so short operations
// stay visible.
func scaledCols(duration uint32, scale float64) int {
	if duration == 0 {
		return 0
	}
	cols := int(float64(duration)*scale + 0.5)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// fitLabel centers label within a field of width cols, truncating the
// label if the field is too narrow and padding with '=' otherwise.
func fitLabel(label string, cols int) string {
	if len(label) >= cols {
		if cols <= 0 {
			return ""
		}
		return label[:cols]
	}
	pad := cols - len(label)
	left := pad / 2
	right := pad - left
	return strings.Repeat("=", left) + label + strings.Repeat("=", right)
}
