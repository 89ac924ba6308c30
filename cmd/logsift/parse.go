package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/minjae-dev/logsift/internal/filter"
	"github.com/minjae-dev/logsift/internal/parser"
	"github.com/minjae-dev/logsift/internal/sink"
	"github.com/spf13/cobra"
)

var (
	parseFormat  string
	parsePattern string
	parseLevel   string
	parseGrep    string
	parseExclude []string
	parseOutput  string

	parseCmd = &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a log file into normalized records",
		Long: `Parse a log file in JSON, JSON-lines or free-text format into
normalized records, optionally filtered by severity and keywords, and emit
them as a pretty-printed JSON array. Gzip input is decompressed
transparently.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
)

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "auto", "log format: auto, json or text")
	parseCmd.Flags().StringVar(&parsePattern, "pattern", "", "regex pattern for text logs (named groups: timestamp, level, message)")
	parseCmd.Flags().StringVar(&parseLevel, "level", "", "minimum log level to include")
	parseCmd.Flags().StringVar(&parseGrep, "grep", "", "only include records containing this keyword")
	parseCmd.Flags().StringArrayVar(&parseExclude, "exclude", nil, "drop records containing this keyword (repeatable)")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "json", "output format: json or text")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	rc, err := openInput(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	// Read once so detection and parsing see the same bytes.
	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("parsing logs: %w", err)
	}

	format := parser.Format(parseFormat)
	switch format {
	case parser.FormatJSON, parser.FormatText:
	case parser.FormatAuto, "":
		format = parser.DetectFormat(bytes.NewReader(data))
		fmt.Fprintf(os.Stderr, "Detected format: %s\n", format)
	default:
		return fmt.Errorf("unknown format %q (expected auto, json or text)", parseFormat)
	}

	p, err := parser.ForFormat(format, stringOrConfig(parsePattern, "pattern"))
	if err != nil {
		return err
	}
	recs, err := p.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing logs: %w", err)
	}

	chain := filter.NewChain(filter.MatchAll)
	if level := stringOrConfig(parseLevel, "level"); level != "" {
		chain.Add(filter.NewMinLevel(level))
	}
	if parseGrep != "" {
		chain.Add(filter.NewKeywordFilter(parseGrep))
	}
	if len(parseExclude) > 0 {
		chain.Add(filter.NewExcludeFilter(parseExclude...))
	}
	recs = filter.Apply(recs, chain)

	var out sink.Sink
	switch parseOutput {
	case "text":
		out = sink.NewTerminalSink(os.Stdout, true)
	case "json", "":
		out = sink.NewJSONSink(os.Stdout)
	default:
		return fmt.Errorf("unknown output %q (expected json or text)", parseOutput)
	}

	for i := range recs {
		if err := out.Write(&recs[i]); err != nil {
			return fmt.Errorf("parsing logs: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("parsing logs: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nParsed %d log entries\n", len(recs))
	return nil
}
