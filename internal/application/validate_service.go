package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artcheck/artcheck/internal/domain"
)

// ValidateService is the validation entry point: it resolves the target,
// drives the evaluator over the selected articles, and assembles the final
// report. The only error it can return is a *domain.TargetError raised before
// any article is evaluated; every later fault is a status inside the report.
type ValidateService struct {
	catalog  domain.Catalog
	invoker  domain.ToolInvoker
	commits  domain.CommitResolver
	logger   *slog.Logger
	now      func() time.Time
	newRunID func() string
}

// Option configures a ValidateService.
type Option func(*ValidateService)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *ValidateService) { s.now = now }
}

// WithRunIDSource replaces the run-id generator, mainly for tests.
func WithRunIDSource(gen func() string) Option {
	return func(s *ValidateService) { s.newRunID = gen }
}

// WithCommitResolver enables stamping reports with the target's commit hash.
func WithCommitResolver(r domain.CommitResolver) Option {
	return func(s *ValidateService) { s.commits = r }
}

// WithLogger sets the structured logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *ValidateService) { s.logger = l }
}

func NewValidateService(catalog domain.Catalog, invoker domain.ToolInvoker, opts ...Option) *ValidateService {
	s := &ValidateService{
		catalog:  catalog,
		invoker:  invoker,
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate runs the full validation pipeline against one artifact.
func (s *ValidateService) Validate(ctx context.Context, path string, cfg domain.RunConfig) (*domain.ValidationReport, error) {
	cfg = cfg.Normalized()
	startedAt := s.now()
	start := time.Now()

	target, err := s.resolveTarget(path)
	if err != nil {
		return nil, err
	}

	rules := s.catalog.Select(cfg.RuleFilter)
	s.logger.Info("validation started",
		"run_target", target.Path,
		"articles", len(rules),
		"workers", cfg.Workers,
		"strict", cfg.StrictMode)

	registry := BuildRegistry(s.invoker, cfg)
	runner := NewCheckRunner(cfg.CheckTimeout)
	evaluator := NewRuleEvaluator(registry, runner, cfg)

	assessments := evaluator.EvaluateAll(ctx, rules, target, cfg.Workers)

	summary := domain.Aggregate(s.catalog, assessments)
	verdict := domain.VerdictFor(summary)
	remediation := domain.Synthesize(assessments)

	report := &domain.ValidationReport{
		RunID:          s.newRunID(),
		Target:         domain.TargetRef{Path: target.Path, Commit: target.Commit},
		CatalogVersion: s.catalog.Version,
		Verdict:        verdict,
		Summary:        summary,
		Assessments:    assessments,
		Remediation:    remediation,
		StartedAt:      startedAt,
		Elapsed:        time.Since(start),
	}

	s.logger.Info("validation finished",
		"run_id", report.RunID,
		"verdict", report.Verdict,
		"score", report.Summary.OverallScore,
		"failed", report.Summary.FailedArticles)

	return report, nil
}

// resolveTarget checks the target preconditions and reads the source once.
// Any violation is a *domain.TargetError, the single fatal error tier.
func (s *ValidateService) resolveTarget(path string) (*domain.Target, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &domain.TargetError{Path: path, Reason: "cannot resolve path", Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.TargetError{Path: abs, Reason: "artifact does not exist", Err: err}
		}
		return nil, &domain.TargetError{Path: abs, Reason: "artifact is not accessible", Err: err}
	}
	if info.IsDir() {
		return nil, &domain.TargetError{Path: abs, Reason: "artifact is a directory, expected a single file"}
	}
	if !strings.HasSuffix(abs, ".go") {
		return nil, &domain.TargetError{Path: abs, Reason: fmt.Sprintf("unsupported artifact kind %q, expected a .go file", filepath.Ext(abs))}
	}

	source, err := os.ReadFile(abs)
	if err != nil {
		return nil, &domain.TargetError{Path: abs, Reason: "artifact is not readable", Err: err}
	}

	target := &domain.Target{Path: abs, Source: source}

	if s.commits != nil {
		if hash, err := s.commits.CommitHash(abs); err == nil {
			target.Commit = hash
		} else {
			s.logger.Debug("commit resolution skipped", "error", err)
		}
	}

	return target, nil
}
