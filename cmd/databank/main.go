// databank — persistence and export tool for scraped social-media data.
//
// Usage:
//
//	databank [flags] -stats
//	databank [flags] -export all|<table> [-out file.xlsx]
//	databank -create-config
//
// Flags:
//
//	-config        Path to databank.yaml (optional; defaults apply)
//	-stats         Print row counts for every table
//	-export        Export "all" tables or one table to an .xlsx workbook
//	-out           Output file (default: <export dir>/databank_export_<ts>.xlsx)
//	-source-type   Filter export by source_type
//	-nickname      Filter export by nickname substring (case-insensitive)
//	-from, -to     Filter export by collection_time window (inclusive)
//	-create-config Write a databank.yaml template and exit
//
// Environment:
//
//	DATABANK_DSN  PostgreSQL connection string (used when config leaves dsn empty)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ruslano69/databank/internal/config"
	"github.com/ruslano69/databank/internal/export"
	"github.com/ruslano69/databank/internal/schema"
	"github.com/ruslano69/databank/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	stats := flag.Bool("stats", false, "print row counts for every table")
	exportTarget := flag.String("export", "", `export "all" or one table to xlsx`)
	out := flag.String("out", "", "output .xlsx path")
	sourceType := flag.String("source-type", "", "filter export by source_type")
	nickname := flag.String("nickname", "", "filter export by nickname substring")
	from := flag.String("from", "", "filter export by collection_time >=")
	to := flag.String("to", "", "filter export by collection_time <=")
	createConfig := flag.Bool("create-config", false, "write a databank.yaml template and exit")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *createConfig {
		if err := os.WriteFile("databank.yaml", []byte(config.Template), 0o644); err != nil {
			log.Fatal().Err(err).Msg("write config template")
		}
		fmt.Println("created databank.yaml")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{
		DSN:      cfg.Database.DSN,
		MinConns: cfg.Database.MinConns,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		// Open already logged the cause; a degraded store cannot serve
		// the read-side commands below.
		os.Exit(1)
	}
	defer st.Close()

	switch {
	case *stats:
		if err := printStats(ctx, st); err != nil {
			log.Fatal().Err(err).Msg("statistics failed")
		}
	case *exportTarget != "":
		r := store.Range{From: *from, To: *to, Nickname: *nickname, SourceType: *sourceType}
		if err := runExport(ctx, st, cfg, *exportTarget, *out, r); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printStats(ctx context.Context, st *store.Store) error {
	stats, err := st.Statistics(ctx)
	if err != nil {
		return err
	}
	total := int64(0)
	for _, t := range schema.Tables() {
		fmt.Printf("%-14s %d\n", t.Name, stats[t.Name])
		total += stats[t.Name]
	}
	fmt.Printf("%-14s %d\n", "total", total)
	return nil
}

func runExport(ctx context.Context, st *store.Store, cfg *config.Config, target, out string, r store.Range) error {
	if out == "" {
		out = filepath.Join(cfg.Export.Dir, export.Filename("databank_export"))
	}

	exp := export.New(st)
	if target == "all" {
		if !r.IsZero() {
			return fmt.Errorf("range filters require a single table, not %q", target)
		}
		_, err := exp.ExportAll(ctx, out)
		return err
	}
	if r.IsZero() {
		_, err := exp.ExportTable(ctx, target, out, nil)
		return err
	}
	_, err := exp.ExportRange(ctx, target, out, r)
	return err
}
