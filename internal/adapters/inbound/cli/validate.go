package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/artcheck/artcheck/internal/adapters/outbound/config"
	"github.com/artcheck/artcheck/internal/adapters/outbound/gitinfo"
	"github.com/artcheck/artcheck/internal/adapters/outbound/toolexec"
	"github.com/artcheck/artcheck/internal/adapters/outbound/tui"
	"github.com/artcheck/artcheck/internal/application"
	"github.com/artcheck/artcheck/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		strict     bool
		ruleFilter []string
		timeout    time.Duration
		workers    int
		sequential bool
		jsonOutput bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate one source artifact against the article catalog",
		Long:  "Run every selected article's checks against a single Go source file and report the weighted compliance verdict. Exits non-zero when the verdict is FAIL.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			cfg, err := config.New().Load(filepath.Dir(path))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			// Flags override file config when set.
			if cmd.Flags().Changed("strict") {
				cfg.StrictMode = strict
			}
			if cmd.Flags().Changed("rules") {
				cfg.RuleFilter = ruleFilter
			}
			if cmd.Flags().Changed("timeout") {
				cfg.CheckTimeout = timeout
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if sequential {
				cfg.Workers = 1
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts := []application.Option{
				application.WithCommitResolver(gitinfo.New()),
			}
			if verbose {
				opts = append(opts, application.WithLogger(
					slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})),
				))
			}

			svc := application.NewValidateService(domain.DefaultCatalog(), toolexec.NewInvoker(), opts...)

			report, err := svc.Validate(cmd.Context(), path, cfg)
			if err != nil {
				var targetErr *domain.TargetError
				if errors.As(err, &targetErr) {
					return targetErr
				}
				return fmt.Errorf("validation failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if report.Verdict == domain.VerdictFail {
				return fmt.Errorf("verdict FAIL: %d of %d articles failed",
					report.Summary.FailedArticles, report.Summary.TotalArticles)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	cmd.Flags().StringSliceVar(&ruleFilter, "rules", nil, "Validate only these article ids (unknown ids are skipped)")
	cmd.Flags().DurationVar(&timeout, "timeout", domain.DefaultCheckTimeout, "Per-check timeout")
	cmd.Flags().IntVar(&workers, "workers", domain.DefaultWorkers, "Worker-pool size for article evaluation")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "Evaluate articles one at a time")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.ValidationReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// exitCode maps an Execute error to a process exit code, keeping target
// errors distinguishable from validation failures.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var targetErr *domain.TargetError
	if errors.As(err, &targetErr) {
		return 2
	}
	return 1
}

// Run executes the CLI and returns the process exit code.
func Run() int {
	err := Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}
