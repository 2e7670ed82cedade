// Package genre renders the static studio one-pager sheets and builds
// the curated markdown sidecar, including the realized chord table.
package genre

import (
	"fmt"
	"strings"
)

type topic struct {
	key   string
	value string
	items []string
}

type sheet struct {
	topics []topic
	refs   []string
}

var sheets = map[string]sheet{
	"hyperpop": {
		topics: []topic{
			{key: "BPM", value: "140–200 (common), 80–205 (extended)"},
			{key: "Meters", value: "Mostly 4/4; playful switches; feel-based syncopation."},
			{key: "Modes", value: "Phrygian, Lydian, Mixolydian; also Major/Minor, Dorian; pentatonic colors."},
			{key: "Rhythm", value: "Chaotic/experimental complexity; tempo shifts; polyrhythms; glitchy, " +
				"asymmetrical percussion; occasional odd meters (5/4, 7/8)."},
			{key: "Melody", value: "Bright synths & vocal chops; heavy FX (autotune/formant/pitch); " +
				"catchy repetitive arps; maximalist layering; counter-melodies."},
			{key: "Harmony", value: "Melody-driven; layered/pitched vocals imply harmony; frequent borrowed chords; " +
				"7ths/9ths for sheen; minor↔major pivots."},
			{key: "Common Progressions", value: "i–VII–VI; I–V–vi–IV; ascending i→III→IV; add 7ths/9ths."},
			{key: "Degrees (melody focus)", value: "Lean on 1,2,#4(=II),5, bVII; surprise with bVI/bII."},
			{key: "Extensions", value: "9ths common; 11ths/13ths for extreme brightness."},
			{key: "Voicings", items: []string{
				"Drums: transient-forward, staccato/glitch fills, sidechain pump.",
				"Bass: mono or detuned saw; octave jumps; distortion; slides.",
				"Pads: wide, bright (Lydian), shimmer; slow attack or gate-chop.",
				"Leads/Vox: hard-tuned, layered 3rds/6ths; wide detune; OTT/bitcrush.",
			}},
			{key: "Tips", items: []string{
				"Use Lydian's #4 (map as II) for lift.",
				"Borrow bVII/bVI/bII for contrast.",
				"Automate formants/pitch; chop vox for motifs.",
			}},
		},
		refs: []string{
			"https://www.youtube.com/watch?v=DByOgFWDjBo",
			"https://youtu.be/h3yMkEkqwVU?si=jEvYxRGTrd6eqP-O",
		},
	},
}

// SheetMarkdown renders the named genre's one-pager as a markdown
// table, or the empty string for an unknown genre.
func SheetMarkdown(name string) string {
	g, ok := sheets[strings.ToLower(name)]
	if !ok {
		return ""
	}
	title := strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
	lines := []string{
		fmt.Sprintf("# %s — Studio One-Pager", title),
		"",
		"| Topic | Notes |",
		"|:------|:------|",
	}
	for _, t := range g.topics {
		val := t.value
		if len(t.items) > 0 {
			bullets := make([]string, len(t.items))
			for i, item := range t.items {
				bullets[i] = "• " + item
			}
			val = strings.Join(bullets, "<br>")
		}
		lines = append(lines, fmt.Sprintf("| **%s** | %s |", t.key, val))
	}
	if len(g.refs) > 0 {
		lines = append(lines, "", "**References**")
		for _, r := range g.refs {
			lines = append(lines, "- "+r)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
