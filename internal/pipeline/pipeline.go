// Package pipeline orchestrates Source → parse → Filter → Sink streaming.
package pipeline

import (
	"context"
	"fmt"

	"github.com/minjae-dev/logsift/internal/filter"
	"github.com/minjae-dev/logsift/internal/monitor"
	"github.com/minjae-dev/logsift/internal/parser"
	"github.com/minjae-dev/logsift/internal/sink"
	"github.com/minjae-dev/logsift/internal/source"
)

// Config holds pipeline configuration.
type Config struct {
	Source    source.Source
	Parser    parser.LineParser
	Filters   *filter.Chain
	Sinks     []sink.Sink
	Stats     *monitor.Stats
	ShowStats bool
}

// Run executes the pipeline: reads lines from the source, parses them into
// records, filters, and writes to the sinks. Blocks until the source is
// exhausted or ctx is cancelled.
func Run(ctx context.Context, cfg *Config) error {
	if cfg.Source == nil {
		return fmt.Errorf("pipeline: source is required")
	}
	if cfg.Parser == nil {
		return fmt.Errorf("pipeline: line parser is required")
	}
	if len(cfg.Sinks) == 0 {
		return fmt.Errorf("pipeline: at least one sink is required")
	}

	ch, err := cfg.Source.Start(ctx)
	if err != nil {
		return fmt.Errorf("pipeline: start source: %w", err)
	}

	for line := range ch {
		rec, ok := cfg.Parser.ParseLine(line)
		if !ok {
			continue
		}

		if cfg.Stats != nil {
			cfg.Stats.Record(&rec)
		}

		if cfg.Filters != nil && cfg.Filters.Len() > 0 {
			if !cfg.Filters.Match(&rec) {
				continue
			}
		}

		if cfg.Stats != nil {
			cfg.Stats.RecordMatch()
		}

		for _, s := range cfg.Sinks {
			if err := s.Write(&rec); err != nil {
				return fmt.Errorf("pipeline: write to %s: %w", s.Name(), err)
			}
		}
	}

	for _, s := range cfg.Sinks {
		_ = s.Flush()
		_ = s.Close()
	}

	if cfg.ShowStats && cfg.Stats != nil {
		fmt.Println()
		fmt.Println(cfg.Stats.Summary())
	}

	return nil
}
