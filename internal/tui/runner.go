package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/minjae-dev/logsift/internal/buffer"
	"github.com/minjae-dev/logsift/internal/filter"
	"github.com/minjae-dev/logsift/internal/monitor"
	"github.com/minjae-dev/logsift/internal/parser"
	"github.com/minjae-dev/logsift/internal/record"
	"github.com/minjae-dev/logsift/internal/source"
)

// RunConfig holds configuration for the watch pipeline.
type RunConfig struct {
	Source  source.Source
	Parser  parser.LineParser
	Filters *filter.Chain
	Stats   *monitor.Stats
	Rate    *monitor.RateDetector
	Alerts  *monitor.AlertEngine
	RingBuf *buffer.Ring
}

// Run starts the dashboard with a live source pipeline.
// This function blocks until the user quits.
func Run(ctx context.Context, cfg *RunConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(cfg.Stats, cfg.Rate, cfg.Alerts, cfg.RingBuf, cfg.Source.Name())
	program := tea.NewProgram(model, tea.WithAltScreen())

	ch, err := cfg.Source.Start(ctx)
	if err != nil {
		return fmt.Errorf("watch: start source: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for line := range ch {
			rec, ok := cfg.Parser.ParseLine(line)
			if !ok {
				continue
			}

			cfg.Stats.Record(&rec)

			if cfg.RingBuf != nil {
				cfg.RingBuf.Push(rec)
			}

			if cfg.Filters != nil && cfg.Filters.Len() > 0 {
				if !cfg.Filters.Match(&rec) {
					continue
				}
			}

			cfg.Stats.RecordMatch()

			if spiking := cfg.Rate.Record(); spiking {
				program.Send(SpikeMsg{Rate: cfg.Rate.CurrentRate()})
			}

			checkAlerts(program, cfg.Alerts, &rec)

			program.Send(RecordMsg(rec))
		}

		program.Send(DoneMsg{})
	}()

	_, err = program.Run()

	cancel()
	wg.Wait()

	return err
}

func checkAlerts(p *tea.Program, alerts *monitor.AlertEngine, r *record.Record) {
	if alerts == nil {
		return
	}
	if triggered := alerts.Check(r); len(triggered) > 0 {
		p.Send(AlertMsg{Rules: triggered, Record: *r})
	}
}
