package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xiaoshihou514/bot/bot"
)

// loadTree reads path and builds a tree over its line starts.
func loadTree(path string) (*bot.Tree, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tr, err := bot.Init(buf)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}
	return tr, nil
}

// lineEntry is one row of the printed offset table.
type lineEntry struct {
	Line   int   `json:"line"`
	Offset int64 `json:"offset"`
}

// printJSONLine prints a single (line, offset) pair as a JSON object.
func printJSONLine(lnum int, off int64) error {
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(lineEntry{Line: lnum, Offset: off})
}

// dumpTree prints every (line, offset) pair in tr, as JSON if jsonOut is set
// or as a plain aligned table otherwise.
func dumpTree(tr *bot.Tree) error {
	entries := make([]lineEntry, 0, tr.Len())
	tr.Lines()(func(lnum int, off int64) bool {
		entries = append(entries, lineEntry{Line: lnum, Offset: off})
		return true
	})

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	for _, e := range entries {
		fmt.Printf("%-8d %d\n", e.Line, e.Offset)
	}
	return nil
}
