package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/lukaszgryglicki/gobilliard/internal/billiard"
)

func main() {
	billiard.Debug = os.Getenv("DEBUG") != ""

	cfgPath := "config.json"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	if err := run(cfgPath); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := billiard.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	p, bd, target, kind, err := cfg.Build()
	if err != nil {
		return err
	}

	if warnings := billiard.CheckObstacleOverlaps(bd); len(warnings) > 0 {
		for _, w := range warnings {
			fmt.Printf("[WARN] %s\n", w.String())
		}
	}

	opts := &billiard.Options{
		Warn: func(kind billiard.Kind, msg string) {
			fmt.Printf("[%s] %s\n", kind, msg)
		},
	}

	events, err := billiard.Evolve(p, bd, target, kind, opts)
	if err != nil {
		return err
	}

	out := os.Getenv("CSV_OUT")
	if out == "" {
		out = "events.csv"
	}
	return writeEventsCSV(out, events)
}

func writeEventsCSV(path string, events []billiard.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"t", "x", "y", "vx", "vy", "omega", "reason"}); err != nil {
		return err
	}
	for _, e := range events {
		record := []string{
			formatReal(e.T),
			formatReal(e.Pos.X),
			formatReal(e.Pos.Y),
			formatReal(e.Vel.X),
			formatReal(e.Vel.Y),
			formatReal(e.Omega),
			reasonString(e.Reason),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func formatReal(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func reasonString(r billiard.EventReason) string {
	switch r {
	case billiard.Escape:
		return "escape"
	case billiard.Pinned:
		return "pinned"
	default:
		return "collision"
	}
}
