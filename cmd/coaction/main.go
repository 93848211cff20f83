// Command coaction builds coaction graphs from a JSONL event file.
//
// Each input line is one already-normalized event:
//
//	{"account_id": 42, "ts": 1700000000, "urls": ["https://example.org/a"]}
//
// For every requested mode the command streams the file through the engine
// and writes a TSV edge list (source, target, weight).
//
// Usage:
//
//	coaction -events tweets.jsonl -modes bot,ideology -out ./graphs
//	coaction -events tweets.jsonl -config coaction.yaml -metrics-file coaction.prom
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/coactgraph/coaction"
	"github.com/katalvlaran/coactgraph/config"
	"github.com/katalvlaran/coactgraph/metrics"
)

func main() {
	eventsPath := flag.String("events", "", "path to the JSONL event file (required)")
	configPath := flag.String("config", "", "optional YAML config overlaying the defaults")
	modes := flag.String("modes", "bot,ideology", "comma-separated mode names to run")
	outDir := flag.String("out", "", "directory for <mode>_edges.tsv files (default: stdout)")
	metricsFile := flag.String("metrics-file", "", "write Prometheus metrics in text format to this file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *eventsPath == "" {
		fmt.Fprintln(os.Stderr, "coaction: -events is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, runArgs{
		eventsPath:  *eventsPath,
		configPath:  *configPath,
		modes:       splitModes(*modes),
		outDir:      *outDir,
		metricsFile: *metricsFile,
	}); err != nil {
		logger.Error("coaction failed", "error", err)
		os.Exit(1)
	}
}

type runArgs struct {
	eventsPath  string
	configPath  string
	modes       []string
	outDir      string
	metricsFile string
}

func run(ctx context.Context, logger *slog.Logger, args runArgs) error {
	cfg, err := config.LoadConfig(args.configPath)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts = append(opts, coaction.WithLogger(logger), coaction.WithMetrics(metrics.New(reg)))

	batch := uuid.New()
	logger = logger.With("batch_id", batch.String())
	logger.Info("coaction starting", "events", args.eventsPath, "modes", strings.Join(args.modes, ","), "pair_mode", cfg.PairMode)

	for _, name := range args.modes {
		mode, err := cfg.Mode(name)
		if err != nil {
			return err
		}
		if err := runMode(ctx, args, mode, opts); err != nil {
			return fmt.Errorf("mode %s: %w", name, err)
		}
	}

	if args.metricsFile != "" {
		if err := prometheus.WriteToTextfile(args.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

func runMode(ctx context.Context, args runArgs, mode coaction.Mode, opts []coaction.Option) error {
	src, err := openJSONL(args.eventsPath)
	if err != nil {
		return err
	}
	defer src.Close()

	rep, err := coaction.RunSource(ctx, src, mode, opts...)
	if err != nil {
		return err
	}

	if args.outDir == "" {
		fmt.Fprintf(os.Stdout, "# %s run=%s vertices=%d edges=%d\n", mode, rep.RunID, rep.Stats.VertexCount, rep.Stats.EdgeCount)
		return writeTSV(os.Stdout, rep.Graph)
	}

	if err := os.MkdirAll(args.outDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(args.outDir, mode.Name+"_edges.tsv"))
	if err != nil {
		return err
	}
	if err := writeTSV(f, rep.Graph); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func splitModes(s string) []string {
	var out []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}
