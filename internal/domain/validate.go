package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eventlint/eventlint/internal/domain/naming"
)

// isoPrefix is the minimal ISO-8601-with-time prefix: YYYY-MM-DDT.
var isoPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T`)

// Validate runs all rule families against a record and aggregates their
// findings. It is a pure function: the record and config are never mutated,
// and identical inputs produce an identical, order-stable result.
//
// Families run in fixed order (required, type, naming, domain) and do not
// short-circuit each other: a field violating several rules produces several
// separate issues.
func Validate(rec Record, cfg RuleConfig) ValidationResult {
	var issues []Issue
	issues = append(issues, checkRequired(rec, cfg)...)
	issues = append(issues, checkTypes(rec, cfg)...)
	issues = append(issues, checkNaming(rec, cfg)...)
	issues = append(issues, checkDomains(rec, cfg)...)

	passed := true
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			passed = false
			break
		}
	}

	return ValidationResult{Passed: passed, Issues: issues}
}

// checkRequired flags absent required fields as errors and present-but-empty
// values as warnings (a softer fault than absence).
func checkRequired(rec Record, cfg RuleConfig) []Issue {
	var issues []Issue
	for _, field := range cfg.RequiredFields {
		v, ok := rec.Get(field)
		if !ok {
			issues = append(issues, Issue{
				Category: CategoryRequired,
				Field:    field,
				Message:  fmt.Sprintf("required field %q is missing", field),
				Severity: SeverityError,
			})
			continue
		}
		if isBlank(v) {
			issues = append(issues, Issue{
				Category: CategoryRequired,
				Field:    field,
				Message:  fmt.Sprintf("required field %q is present but empty", field),
				Severity: SeverityWarning,
			})
		}
	}
	return issues
}

// checkTypes compares each configured field's actual type tag against the
// expected one. Absent fields are skipped: presence is the required family's
// job, and a type rule never implies it.
func checkTypes(rec Record, cfg RuleConfig) []Issue {
	var issues []Issue
	for _, rule := range cfg.FieldTypes {
		v, ok := rec.Get(rule.Field)
		if !ok {
			continue
		}

		actual := KindOf(v)
		if actual != rule.Type {
			issues = append(issues, Issue{
				Category: CategoryType,
				Field:    rule.Field,
				Message:  fmt.Sprintf("field %q expected type %s, got %s", rule.Field, rule.Type, actual),
				Severity: SeverityError,
			})
		}

		// Timestamp-role string fields additionally get a format check.
		// Additive: emitted alongside, not instead of, a mismatch error.
		if rule.Type == KindString && isTimestampRole(rule.Field) {
			if s, isStr := v.(string); isStr && !isoPrefix.MatchString(s) {
				issues = append(issues, Issue{
					Category: CategoryType,
					Field:    rule.Field,
					Message:  fmt.Sprintf("field %q does not look like an ISO-8601 timestamp: %q", rule.Field, s),
					Severity: SeverityWarning,
				})
			}
		}
	}
	return issues
}

// checkNaming applies the configured case convention to every key actually
// present in the record, in document order. A convention with no registered
// checker yields no issues.
func checkNaming(rec Record, cfg RuleConfig) []Issue {
	checker, ok := naming.CheckerFor(string(cfg.NamingConvention))
	if !ok {
		return nil
	}

	var issues []Issue
	for _, key := range rec.Keys {
		if !checker(key) {
			issues = append(issues, Issue{
				Category: CategoryNaming,
				Field:    key,
				Message:  fmt.Sprintf("field %q does not follow %s naming", key, cfg.NamingConvention),
				Severity: SeverityWarning,
			})
		}
	}
	return issues
}

// checkDomains verifies membership in each field's allowed-value set by exact
// match. Absent fields are skipped.
func checkDomains(rec Record, cfg RuleConfig) []Issue {
	var issues []Issue
	for _, rule := range cfg.DomainRules {
		v, ok := rec.Get(rule.Field)
		if !ok {
			continue
		}

		member := false
		for _, allowed := range rule.Allowed {
			if valueEqual(v, allowed) {
				member = true
				break
			}
		}
		if !member {
			issues = append(issues, Issue{
				Category: CategoryDomain,
				Field:    rule.Field,
				Message: fmt.Sprintf("field %q has value %s; allowed values: %s",
					rule.Field, formatValue(v), formatAllowed(rule.Allowed)),
				Severity: SeverityWarning,
			})
		}
	}
	return issues
}

// isBlank reports whether a present value counts as empty for the required
// family: null, the empty string, or a whitespace-only string.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// isTimestampRole recognizes field names that carry event timestamps.
func isTimestampRole(field string) bool {
	return field == "timestamp" ||
		strings.HasSuffix(field, "_timestamp") ||
		strings.HasSuffix(field, "_at")
}

// valueEqual compares a record value against an allowed literal. JSON decodes
// numbers as float64 while YAML configs produce ints, so numeric values are
// compared by magnitude; everything else requires exact scalar equality.
func valueEqual(a, b any) bool {
	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		return ok && fa == fb
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		// Composite values never match a literal.
		return false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// formatAllowed renders the allowed set in configured order.
func formatAllowed(allowed []any) string {
	parts := make([]string, 0, len(allowed))
	for _, v := range allowed {
		parts = append(parts, formatValue(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
