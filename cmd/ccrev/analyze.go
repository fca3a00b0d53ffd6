package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/moottier/ccrev/batch"
	"github.com/moottier/ccrev/chart"
	"github.com/moottier/ccrev/ingest"
	"github.com/moottier/ccrev/report"
	"github.com/moottier/ccrev/ruleengine"
	"github.com/moottier/ccrev/stats"
	"github.com/moottier/ccrev/store"
)

// runAnalyze ingests one file, or every matching file in a directory,
// analyzes each under the default rule catalog, persists the results,
// and writes a combined HTML report.
func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	in := fs.String("in", "", "CSV file or directory of CSV files to analyze")
	ext := fs.String("ext", ".csv", "file extension to match when -in is a directory")
	dataCol := fs.Int("data-col", 0, "zero-indexed column holding the measurement value")
	indexCol := fs.Int("index-col", -1, "zero-indexed column holding the row label (-1 for none)")
	hasHeader := fs.Bool("header", true, "whether the CSV has a header row")
	dbPath := fs.String("db", "ccrev.db", "path to the SQLite database to persist into")
	out := fs.String("out", "report.html", "path to write the combined HTML report to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("analyze: -in is required")
	}

	paths, err := inputPaths(*in, *ext)
	if err != nil {
		return err
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	catalog := ruleengine.DefaultCatalog()
	ctx := context.Background()

	var sections []report.Section
	for _, path := range paths {
		b, err := analyzeOne(path, *dataCol, *indexCol, *hasHeader, catalog)
		if err != nil {
			log.Printf("ccrev: skipping %s: %v", path, err)

			continue
		}

		id, err := st.Save(ctx, b)
		if err != nil {
			return fmt.Errorf("analyze: save %s: %w", path, err)
		}
		log.Printf("ccrev: saved %s as batch %d", path, id)

		png, err := chart.Render(b, catalog)
		if err != nil {
			return fmt.Errorf("analyze: render %s: %w", path, err)
		}
		sections = append(sections, report.Section{Batch: b, ChartPNG: png, Narrative: report.Narrate(b)})
	}

	html, err := report.Build(sections)
	if err != nil {
		return err
	}

	return os.WriteFile(*out, html, 0o644)
}

func inputPaths(in, ext string) ([]string, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{in}, nil
	}

	return ingest.Walk(ingest.Dir{Path: in, Extensions: []string{ext}})
}

func analyzeOne(path string, dataCol, indexCol int, hasHeader bool, catalog []ruleengine.Rule) (batch.Batch, error) {
	series, index, err := ingest.ReadSeries(ingest.CSVSource{
		Path: path, DataColumn: dataCol, IndexColumn: indexCol, HasHeader: hasHeader,
	})
	if err != nil {
		return batch.Batch{}, err
	}

	mean, stdev, err := stats.Compute(series)
	if err != nil {
		return batch.Batch{}, err
	}

	labels, err := ruleengine.Analyze(series, mean, stdev, catalog)
	if err != nil {
		return batch.Batch{}, err
	}

	return batch.Batch{
		Name:        filepath.Base(path),
		Series:      series,
		Index:       index,
		Mean:        mean,
		Stdev:       stdev,
		Labels:      labels,
		Signals:     batch.SignalsFromLabels(series, mean, labels),
		CatalogName: "default",
	}, nil
}
