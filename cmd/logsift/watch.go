package cmd

import (
	"os"
	"time"

	"github.com/minjae-dev/logsift/internal/buffer"
	"github.com/minjae-dev/logsift/internal/filter"
	"github.com/minjae-dev/logsift/internal/monitor"
	"github.com/minjae-dev/logsift/internal/parser"
	"github.com/minjae-dev/logsift/internal/pipeline"
	"github.com/minjae-dev/logsift/internal/sink"
	"github.com/minjae-dev/logsift/internal/source"
	"github.com/minjae-dev/logsift/internal/tui"
	"github.com/spf13/cobra"
)

var (
	watchFollow  bool
	watchPattern string
	watchLevel   string
	watchGrep    string
	watchExclude []string
	watchAlerts  []string
	watchPlain   bool

	watchCmd = &cobra.Command{
		Use:   "watch [FILE]",
		Short: "Watch a log stream with a live dashboard",
		Long: `Watch a log file (or stdin when FILE is omitted or "-") with a live
dashboard showing level counters, throughput, the current health verdict and
user-defined alert rules. --plain streams colorized lines instead of the
dashboard.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().BoolVarP(&watchFollow, "follow", "f", false, "keep reading as the file grows")
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "regex pattern for text lines (named groups: timestamp, level, message)")
	watchCmd.Flags().StringVar(&watchLevel, "level", "", "minimum log level to display")
	watchCmd.Flags().StringVar(&watchGrep, "grep", "", "only display records containing this keyword")
	watchCmd.Flags().StringArrayVar(&watchExclude, "exclude", nil, "hide records containing this keyword (repeatable)")
	watchCmd.Flags().StringArrayVar(&watchAlerts, "alert", nil, "regex alert rule (repeatable)")
	watchCmd.Flags().BoolVar(&watchPlain, "plain", false, "stream lines instead of the dashboard")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	var src source.Source
	if len(args) == 0 || args[0] == "-" {
		src = source.NewStdinSource()
	} else {
		src = source.NewFileSource(args[0], watchFollow)
	}

	lineParser, err := parser.NewAutoLine(stringOrConfig(watchPattern, "pattern"))
	if err != nil {
		return err
	}

	chain := filter.NewChain(filter.MatchAll)
	if level := stringOrConfig(watchLevel, "level"); level != "" {
		chain.Add(filter.NewMinLevel(level))
	}
	if watchGrep != "" {
		chain.Add(filter.NewKeywordFilter(watchGrep))
	}
	if len(watchExclude) > 0 {
		chain.Add(filter.NewExcludeFilter(watchExclude...))
	}

	stats := monitor.NewStats()

	if watchPlain {
		return pipeline.Run(cmd.Context(), &pipeline.Config{
			Source:    src,
			Parser:    lineParser,
			Filters:   chain,
			Sinks:     []sink.Sink{sink.NewTerminalSink(os.Stdout, true)},
			Stats:     stats,
			ShowStats: true,
		})
	}

	alerts, err := monitor.NewAlertEngine(watchAlerts)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), &tui.RunConfig{
		Source:  src,
		Parser:  lineParser,
		Filters: chain,
		Stats:   stats,
		Rate:    monitor.NewRateDetector(10*time.Second, 3.0),
		Alerts:  alerts,
		RingBuf: buffer.NewRing(2048),
	})
}
