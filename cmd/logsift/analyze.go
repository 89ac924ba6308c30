package cmd

import (
	"fmt"
	"os"

	"github.com/minjae-dev/logsift/internal/analyze"
	"github.com/minjae-dev/logsift/internal/parser"
	"github.com/spf13/cobra"
)

var (
	analyzeSummary     bool
	analyzeErrorsOnly  bool
	analyzePatterns    bool
	analyzeDiagnostics bool

	analyzeCmd = &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze a JSON log document for errors, patterns and health",
		Long: `Analyze a parsed log document (a JSON array or object of records)
and emit a combined report with summary statistics, error clusters, pattern
distributions and rule-based diagnostics. Section flags narrow the report;
with no flags all four sections are present.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}
)

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeSummary, "summary", false, "show summary only")
	analyzeCmd.Flags().BoolVar(&analyzeErrorsOnly, "errors-only", false, "show error analysis only")
	analyzeCmd.Flags().BoolVar(&analyzePatterns, "patterns", false, "show pattern analysis only")
	analyzeCmd.Flags().BoolVar(&analyzeDiagnostics, "diagnostics", false, "show diagnostic suggestions only")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rc, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer rc.Close()

	recs, err := parser.LoadDocument(rc)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Analyzing %d log entries...\n\n", len(recs))

	rep := analyze.Run(recs, analyze.Options{
		Summary:     analyzeSummary,
		Errors:      analyzeErrorsOnly,
		Patterns:    analyzePatterns,
		Diagnostics: analyzeDiagnostics,
	})

	data, err := rep.Render()
	if err != nil {
		return fmt.Errorf("analyzing logs: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
