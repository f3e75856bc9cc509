package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tuannm99/novatable/internal"
	"github.com/tuannm99/novatable/internal/record"
	"github.com/tuannm99/novatable/internal/table"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a yaml config file")
	pretty := flag.Bool("pretty", false, "Draw the table with borders")
	flag.Parse()

	cfg := internal.DefaultConfig()
	if *cfgPath != "" {
		var err error
		if cfg, err = internal.LoadConfig(*cfgPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	stats := &record.AllocStats{}
	schema := record.NewSchema().
		Field(record.FieldText, "name").
		Field(record.FieldInteger, "age").
		Field(record.FieldFloat, "balance")

	tbl, err := table.NewMaterialized(*schema,
		table.WithLogger(logger),
		table.WithRenderConfig(cfg.RenderConfig()),
		table.WithTracker(stats),
	)
	if err != nil {
		log.Fatalf("create table: %v", err)
	}

	row, err := record.NewRow(*schema, record.WithTracker(stats))
	if err != nil {
		log.Fatalf("new row: %v", err)
	}
	if err := row.SetString(0, "Juan"); err != nil {
		log.Fatalf("set name: %v", err)
	}
	if err := row.SetInt(1, 42); err != nil {
		log.Fatalf("set age: %v", err)
	}
	if err := row.SetFloat(2, 3.141592); err != nil {
		log.Fatalf("set balance: %v", err)
	}

	if err := tbl.Insert(row); err != nil {
		log.Fatalf("insert: %v", err)
	}
	if err := row.Release(); err != nil {
		log.Fatalf("release row: %v", err)
	}

	if *pretty {
		fmt.Println(tbl.RenderStyled())
	} else {
		fmt.Print(tbl.Render())
	}

	if err := tbl.Close(); err != nil {
		log.Fatalf("close table: %v", err)
	}

	snap := stats.Snapshot()
	logger.Info("buffers released",
		"app", cfg.AppName,
		"allocs", snap.Allocs,
		"frees", snap.Frees,
		"live_bytes", snap.LiveBytes,
	)
}
