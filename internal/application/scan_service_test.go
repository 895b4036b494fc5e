package application_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlint/eventlint/internal/adapters/outbound/parser"
	"github.com/eventlint/eventlint/internal/application"
	"github.com/eventlint/eventlint/internal/domain"
	"github.com/eventlint/eventlint/internal/fixtures"
)

// staticRules is a hermetic domain.RuleLoader for tests.
type staticRules struct {
	cfg domain.RuleConfig
	err error
}

func (s staticRules) Load(string) (domain.RuleConfig, error) { return s.cfg, s.err }

func newService() *application.ScanService {
	return application.NewScanService(
		parser.New(),
		staticRules{cfg: domain.DefaultRules()},
		nil,
		zerolog.Nop(),
	)
}

func TestScan_CompliantFixture(t *testing.T) {
	report, err := newService().Scan([]byte(fixtures.CompliantEvent), "", "")
	require.NoError(t, err)

	assert.True(t, report.Result.Passed)
	assert.Empty(t, report.Result.Issues)
	assert.Equal(t, 0, report.Errors)
	assert.Equal(t, 0, report.Warnings)
	assert.Equal(t, "user.login", report.Event)
	assert.NotEmpty(t, report.ID)
	assert.NotEmpty(t, report.Timestamp)
}

func TestScan_ViolatingFixture(t *testing.T) {
	report, err := newService().Scan([]byte(fixtures.ViolatingEvent), "", "")
	require.NoError(t, err)

	assert.False(t, report.Result.Passed)
	assert.Equal(t, 3, report.Errors, "missing event_name, missing environment, mistyped user_id")
	assert.Equal(t, 3, report.Warnings, "bad timestamp, camelCase key, out-of-domain action_type")
	assert.Equal(t, report.Errors+report.Warnings, len(report.Result.Issues))

	categories := make(map[string]int)
	for _, issue := range report.Result.Issues {
		categories[issue.Category]++
	}
	assert.Equal(t, 2, categories[domain.CategoryRequired])
	assert.Equal(t, 2, categories[domain.CategoryType])
	assert.Equal(t, 1, categories[domain.CategoryNaming])
	assert.Equal(t, 1, categories[domain.CategoryDomain])
}

func TestScan_ParseFailureShortCircuits(t *testing.T) {
	_, err := newService().Scan([]byte(`[1, 2, 3]`), "", "")
	require.Error(t, err)

	var perr *domain.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, domain.InvalidShape, perr.Kind)
}

func TestScan_RuleLoadFailureSurfaces(t *testing.T) {
	svc := application.NewScanService(
		parser.New(),
		staticRules{err: errors.New("boom")},
		nil,
		zerolog.Nop(),
	)

	_, err := svc.Scan([]byte(fixtures.CompliantEvent), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading rules")
}

func TestScan_ResultStableAcrossRuns(t *testing.T) {
	svc := newService()

	first, err := svc.Scan([]byte(fixtures.ViolatingEvent), "", "")
	require.NoError(t, err)
	second, err := svc.Scan([]byte(fixtures.ViolatingEvent), "", "")
	require.NoError(t, err)

	assert.Equal(t, first.Result, second.Result)
	assert.NotEqual(t, first.ID, second.ID, "each scan gets its own report identity")
}
