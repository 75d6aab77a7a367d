package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/storage"
)

// parseExport reads the best score out of a browser localStorage export.
// The export is a JSON object; values may be strings ("12") or numbers (12).
func parseExport(data []byte, key string) (int, error) {
	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		return 0, fmt.Errorf("failed to parse export: %w", err)
	}
	raw, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("export has no %q entry", key)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n int
		if err2 := json.Unmarshal(raw, &n); err2 != nil {
			return 0, fmt.Errorf("%q is neither a string nor a number: %s", key, raw)
		}
		s = strconv.Itoa(n)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q holds an invalid score %q", key, s)
	}
	return n, nil
}

func main() {
	opts := config.FromEnv(config.Default())

	in := flag.String("in", "localstorage.json", "localStorage export to import")
	flag.StringVar(&opts.DBPath, "db", opts.DBPath, "SQLite file for the best score")
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *in, err)
	}
	score, err := parseExport(data, config.BestScoreKey)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, opts.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	wrote, err := storage.NewBestScore(store).Raise(ctx, score)
	if err != nil {
		log.Fatal(err)
	}
	if wrote {
		fmt.Printf("Imported best score %d into %s\n", score, opts.DBPath)
	} else {
		fmt.Printf("Kept the stored best score; %d is not higher\n", score)
	}
}
