package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	progmap "github.com/cbegin/progmap-go"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded defaults from .env")
	}

	var (
		progSpec      = flag.String("prog", "", `progression DSL, e.g. "(ii-V-I-iv-III,(IV-V-VI-ii-I*4))*3"`)
		presetName    = flag.String("preset", "", "degree sequence preset name")
		markovPreset  = flag.String("markov-preset", "", "markov transition-graph preset name")
		markovInline  = flag.String("markov", "", `inline markov transitions: "I:V=0.6,vi=0.4; V:I=0.7,vi=0.3; vi:IV=1.0"`)
		repeat        = flag.Int("repeat", 10, "columns to generate for -preset")
		length        = flag.Int("length", 10, "sequence length for markov sources")
		seed          = flag.Int64("seed", 0, "seed for the markov walk (omit for a time seed)")
		modeName      = flag.String("mode", "", "mode for borrow classification (ionian..locrian)")
		allowBorrowed = flag.Bool("allow-borrowed", false, "permit degrees outside the selected mode")
		borrowedTo    = flag.String("borrowed-to-custom", "", "route borrowed degrees to this grid: custom1|custom2")
		mirror        = flag.String("mirror", "all", "grid sections to emit: all|diatonic|custom1|custom2")
		startNote     = flag.Int("start-note", envInt("PROGMAP_START_NOTE", 0), "base MIDI note for lane 1")
		rowStep       = flag.Int("row-step", envInt("PROGMAP_ROW_STEP", 16), "vertical spacing between rows")
		laneSpec      = flag.String("lane", "", `lane offset overrides per quality, e.g. "1:0,2:1,5:8"`)
		keyName       = flag.String("key", "", "tonic for chord realization (e.g. C, Eb, F#)")
		docFile       = flag.String("doc", "", "write a sidecar markdown built from a curated source file")
		genreName     = flag.String("genre", "", "genre key for the curated doc (e.g. hyperpop)")
		genreSrc      = flag.String("genre-src", "", "path to the curated source markdown")
		auditionFile  = flag.String("audition", "", "write an offline chord preview WAV")
		outFile       = flag.String("o", "", "output mapping file name (required)")
		outPath       = flag.String("outpath", envStr("PROGMAP_OUT_DIR", "./output"), "directory for generated files")
	)
	flag.Parse()

	if *outFile == "" {
		log.Fatal("missing -o output file name")
	}

	lanes, err := parseLaneOverrides(*laneSpec)
	if err != nil {
		log.Fatal(err)
	}

	req := progmap.Request{
		Source: progmap.Source{
			Prog:         *progSpec,
			Preset:       *presetName,
			MarkovPreset: *markovPreset,
			Markov:       *markovInline,
		},
		Repeat:           *repeat,
		Length:           *length,
		Mode:             *modeName,
		AllowBorrowed:    *allowBorrowed,
		BorrowedToCustom: *borrowedTo,
		Mirror:           *mirror,
		StartNote:        *startNote,
		RowStep:          *rowStep,
		LaneOffsets:      lanes,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			req.Seed = seed
		}
	})

	res, err := progmap.Generate(req)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outPath, 0o755); err != nil {
		log.Fatal(err)
	}
	mapPath := filepath.Join(*outPath, *outFile)
	if err := os.WriteFile(mapPath, []byte(res.Mapping), 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", mapPath)

	if *docFile != "" {
		if *genreName == "" {
			log.Fatal("-doc requires -genre (so the curated source file can be found)")
		}
		src := *genreSrc
		if src == "" {
			src = filepath.Join("genres", strings.ToLower(*genreName)+"-source-information.md")
		}
		curated, err := os.ReadFile(src)
		if err != nil {
			log.Fatalf("curated genre source not found: %s (create it; the sidecar is curated-only)", src)
		}
		sidecar, err := progmap.BuildSidecar(string(curated), res.DocColumns(), *keyName, *modeName)
		if err != nil {
			log.Fatal(err)
		}
		if sheet := progmap.GenreSheet(*genreName); sheet != "" {
			sidecar += "\n---\n\n" + sheet
		}
		docPath := filepath.Join(*outPath, *docFile)
		if err := os.WriteFile(docPath, []byte(sidecar), 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s (from curated: %s)\n", docPath, src)
	}

	if *auditionFile != "" {
		wav, err := progmap.RenderAuditionWAV(res.DocColumns(), *keyName, *modeName)
		if err != nil {
			log.Fatal(err)
		}
		wavPath := filepath.Join(*outPath, *auditionFile)
		if err := os.WriteFile(wavPath, wav, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", wavPath)
	}
}

// parseLaneOverrides reads "q:offset" pairs, comma separated.
func parseLaneOverrides(spec string) (map[int]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	out := make(map[int]int)
	for _, pair := range strings.Split(spec, ",") {
		q, off, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			return nil, fmt.Errorf("bad -lane spec %q, use like: -lane 3:2", pair)
		}
		quality, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return nil, fmt.Errorf("bad -lane quality %q", q)
		}
		offset, err := strconv.Atoi(strings.TrimSpace(off))
		if err != nil {
			return nil, fmt.Errorf("bad -lane offset %q", off)
		}
		out[quality] = offset
	}
	return out, nil
}

func envStr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("bad %s value %q", name, v)
	}
	return n
}
