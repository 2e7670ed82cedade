package progmap

import (
	intdegree "github.com/cbegin/progmap-go/internal/degree"
	intgenre "github.com/cbegin/progmap-go/internal/genre"
	inttheory "github.com/cbegin/progmap-go/internal/theory"
)

// GenreSheet renders the named genre's studio one-pager as markdown,
// or the empty string for an unknown genre.
func GenreSheet(name string) string {
	return intgenre.SheetMarkdown(name)
}

// BuildSidecar fills a curated markdown document: when the curated
// text contains the {{CHORD_TABLE}} placeholder and both key and mode
// are given, the placeholder becomes a realized chord table for cols;
// without key or mode the placeholder is dropped; without a
// placeholder the curated text passes through untouched.
func BuildSidecar(curated string, cols []intdegree.Degree, keyName, modeName string) (string, error) {
	table := ""
	if keyName != "" && modeName != "" {
		key, err := inttheory.NewKey(keyName, modeName)
		if err != nil {
			return "", err
		}
		table = intgenre.ChordTable(cols, key)
	}
	return intgenre.BuildSidecar(curated, table), nil
}
