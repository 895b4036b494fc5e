package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlint/eventlint/internal/domain"
)

func TestDefaultRules_Valid(t *testing.T) {
	require.NoError(t, domain.DefaultRules().Validate())
}

func TestRuleConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.RuleConfig)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(c *domain.RuleConfig) {},
		},
		{
			name: "duplicate required field",
			mutate: func(c *domain.RuleConfig) {
				c.RequiredFields = append(c.RequiredFields, "user_id")
			},
			wantErr: "duplicate field",
		},
		{
			name: "empty required field name",
			mutate: func(c *domain.RuleConfig) {
				c.RequiredFields = append(c.RequiredFields, "")
			},
			wantErr: "empty field name",
		},
		{
			name: "unknown type tag",
			mutate: func(c *domain.RuleConfig) {
				c.FieldTypes = append(c.FieldTypes, domain.FieldTypeRule{Field: "extra", Type: "integer"})
			},
			wantErr: `unknown type "integer"`,
		},
		{
			name: "null is not a configurable type",
			mutate: func(c *domain.RuleConfig) {
				c.FieldTypes = append(c.FieldTypes, domain.FieldTypeRule{Field: "extra", Type: domain.KindNull})
			},
			wantErr: "unknown type",
		},
		{
			name: "duplicate type rule",
			mutate: func(c *domain.RuleConfig) {
				c.FieldTypes = append(c.FieldTypes, domain.FieldTypeRule{Field: "user_id", Type: domain.KindString})
			},
			wantErr: "duplicate field",
		},
		{
			name: "empty allowed set",
			mutate: func(c *domain.RuleConfig) {
				c.DomainRules = append(c.DomainRules, domain.DomainRule{Field: "extra"})
			},
			wantErr: "empty allowed set",
		},
		{
			name: "unknown naming convention is accepted",
			mutate: func(c *domain.RuleConfig) {
				c.NamingConvention = "SCREAMING_SNAKE"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultRules()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		value any
		want  domain.FieldKind
	}{
		{"abc", domain.KindString},
		{float64(1.5), domain.KindNumber},
		{42, domain.KindNumber},
		{true, domain.KindBoolean},
		{nil, domain.KindNull},
		{[]any{1, 2}, domain.KindArray},
		{map[string]any{"a": 1}, domain.KindObject},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.KindOf(tt.value), "value %#v", tt.value)
	}
}

func TestValidationResult_Counts(t *testing.T) {
	result := domain.ValidationResult{Issues: []domain.Issue{
		{Severity: domain.SeverityError},
		{Severity: domain.SeverityWarning},
		{Severity: domain.SeverityWarning},
	}}

	errors, warnings := result.Counts()
	assert.Equal(t, 1, errors)
	assert.Equal(t, 2, warnings)
}
