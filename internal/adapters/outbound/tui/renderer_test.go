package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventlint/eventlint/internal/adapters/outbound/tui"
	"github.com/eventlint/eventlint/internal/domain"
)

func sampleReport() *domain.ScanReport {
	return &domain.ScanReport{
		ID:         "scan-1",
		Timestamp:  "2025-11-22T15:00:00Z",
		Event:      "user.login",
		CommitHash: "0123456789abcdef",
		Errors:     1,
		Warnings:   2,
		Result: domain.ValidationResult{
			Passed: false,
			Issues: []domain.Issue{
				{Category: domain.CategoryRequired, Field: "environment", Severity: domain.SeverityError, Message: `required field "environment" is missing`},
				{Category: domain.CategoryType, Field: "timestamp", Severity: domain.SeverityWarning, Message: `field "timestamp" does not look like an ISO-8601 timestamp: "2025/11/22 15:00"`},
				{Category: domain.CategoryNaming, Field: "eventName", Severity: domain.SeverityWarning, Message: `field "eventName" does not follow snake_case naming`},
			},
		},
	}
}

func cleanReport() *domain.ScanReport {
	return &domain.ScanReport{
		ID:        "scan-2",
		Timestamp: "2025-11-22T15:00:00Z",
		Event:     "user.login",
		Result:    domain.ValidationResult{Passed: true},
	}
}

func TestRenderReport_ShowsVerdict(t *testing.T) {
	assert.Contains(t, tui.RenderReport(sampleReport()), "FAIL")
	assert.Contains(t, tui.RenderReport(cleanReport()), "PASS")
}

func TestRenderReport_ShowsCounts(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "1 errors")
	assert.Contains(t, output, "2 warnings")
}

func TestRenderReport_ShowsIssueMessages(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, `required field "environment" is missing`)
	assert.Contains(t, output, "ISO-8601")
	assert.Contains(t, output, "snake_case")
}

func TestRenderReport_GroupsByCategory(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "required")
	assert.Contains(t, output, "type")
	assert.Contains(t, output, "naming")
}

func TestRenderReport_ShowsMetadata(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "user.login")
	assert.Contains(t, output, "01234567")
	assert.NotContains(t, output, "0123456789abcdef", "commit hash is shortened")
}

func TestRenderReport_ExplicitZeroFindingsState(t *testing.T) {
	output := tui.RenderReport(cleanReport())
	assert.Contains(t, output, "No issues found.")
}
