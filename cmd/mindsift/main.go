package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/johns/mindsift/internal/check"
	"github.com/johns/mindsift/internal/config"
	"github.com/johns/mindsift/internal/history"
	"github.com/johns/mindsift/internal/report"
	"github.com/johns/mindsift/internal/review"
	"github.com/johns/mindsift/internal/store"
	"github.com/johns/mindsift/internal/trends"
	"github.com/johns/mindsift/internal/watch"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	switch os.Args[1] {
	case "init":
		dataPath := cfg.DataPath
		if len(os.Args) > 2 {
			dataPath = os.Args[2]
		}
		path, err := config.WriteDefault(dataPath)
		if err != nil {
			fatal("init: %v", err)
		}
		fmt.Printf("wrote config: %s\n", config.CompressHome(path))

	case "analyze":
		if len(os.Args) < 3 {
			fatal("usage: mindsift analyze <capture.jsonl> [--timing <file>]")
		}
		path := os.Args[2]
		timingPath := flagValue(os.Args[3:], "--timing")

		result, err := review.Process(path, timingPath, cfg)
		if err != nil {
			fatal("analyze: %v", err)
		}
		if result.Skipped {
			fmt.Printf("skipped: %s\n", result.Reason)
			return
		}
		fmt.Print(report.Summary(result.Data))
		fmt.Printf("\nreport: %s\n", result.ReportPath)

	case "watch":
		if err := runWatch(cfg); err != nil {
			fatal("watch: %v", err)
		}

	case "trends":
		weeks := 12
		if v := flagValue(os.Args[2:], "--weeks"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				fatal("invalid --weeks value: %s", v)
			}
			weeks = n
		}
		rows, err := loadHistory(cfg)
		if err != nil {
			fatal("trends: %v", err)
		}
		fmt.Print(trends.Format(trends.Compute(rows, weeks)))

	case "stats":
		idx, err := store.Load(cfg.StateDir())
		if err != nil {
			fatal("stats: %v", err)
		}
		fmt.Print(store.FormatRecent(idx.Recent(15)))

	case "check":
		rep := check.Run(cfg)
		fmt.Print(rep.Format())
		if rep.HasFailures() {
			os.Exit(1)
		}

	case "version":
		fmt.Printf("mindsift v%s\n", version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func runWatch(cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w, err := watch.New(cfg.Inbox)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil {
		return err
	}

	fmt.Printf("watching %s\n", config.CompressHome(cfg.Inbox))

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nstopping")
			return nil
		case path := <-w.Events():
			result, err := review.Process(path, "", cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "mindsift: process %s: %v\n", path, err)
				continue
			}
			if result.Skipped {
				fmt.Printf("skipped %s: %s\n", path, result.Reason)
			} else {
				fmt.Printf("processed %s -> %s\n", result.SessionID, result.ReportPath)
			}
		}
	}
}

func loadHistory(cfg config.Config) ([]history.Row, error) {
	if !cfg.History.Enabled {
		return nil, fmt.Errorf("history disabled in config")
	}
	db, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.All()
}

func usage() {
	fmt.Fprintf(os.Stderr, `mindsift v%s — GTD weekly-review pattern analysis

Usage:
  mindsift init [data-path]                    Write default config
  mindsift analyze <capture.jsonl> [--timing <file>]
                                               Analyze one capture
  mindsift watch                               Watch the inbox for captures
  mindsift trends [--weeks <n>]                Week-over-week metric trends
  mindsift stats                               Recent review sessions
  mindsift check                               Verify setup
  mindsift version                             Print version
  mindsift help                                Show this help

Configuration: ~/.config/mindsift/config.toml
`, version)
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "mindsift: "+format+"\n", args...)
	os.Exit(1)
}
