package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eventlint/eventlint/internal/domain"
)

// ScanService runs one full scan: load rules, parse the raw event, validate,
// and wrap the result in a report with scan metadata.
type ScanService struct {
	parser domain.EventParser
	rules  domain.RuleLoader
	git    domain.GitInfo
	log    zerolog.Logger
}

// NewScanService creates a ScanService. The git adapter may be nil; reports
// are then produced without a commit hash.
func NewScanService(parser domain.EventParser, rules domain.RuleLoader, git domain.GitInfo, log zerolog.Logger) *ScanService {
	return &ScanService{parser: parser, rules: rules, git: git, log: log}
}

// Scan validates one raw event against the rules at rulesPath (empty for the
// default lookup). Parse failures short-circuit: the *domain.ParseError is
// returned and no rule evaluation happens.
func (s *ScanService) Scan(raw []byte, rulesPath, workdir string) (*domain.ScanReport, error) {
	cfg, err := s.rules.Load(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	rec, err := s.parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("fields", rec.Len()).Msg("event parsed")

	result := domain.Validate(rec, cfg)
	errors, warnings := result.Counts()

	report := &domain.ScanReport{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Event:     eventName(rec),
		Errors:    errors,
		Warnings:  warnings,
		Result:    result,
	}

	if s.git != nil && workdir != "" && s.git.IsGitRepo(workdir) {
		if hash, err := s.git.CommitHash(workdir); err == nil {
			report.CommitHash = hash
		}
	}

	s.log.Debug().
		Bool("passed", result.Passed).
		Int("errors", errors).
		Int("warnings", warnings).
		Msg("scan complete")

	return report, nil
}

// eventName extracts the record's event_name when it is a string, for report
// metadata only. Validation does not depend on it.
func eventName(rec domain.Record) string {
	if v, ok := rec.Get("event_name"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
