package domain

import "fmt"

// NamingConvention selects the case style enforced on record keys.
type NamingConvention string

const (
	ConventionSnakeCase NamingConvention = "snake_case"
	ConventionCamelCase NamingConvention = "camelCase"
	ConventionMixed     NamingConvention = "mixed"
)

// FieldTypeRule pairs a field name with its expected type tag. Rules are kept
// as an ordered list, not a map, so evaluation follows configured order.
type FieldTypeRule struct {
	Field string    `yaml:"field" json:"field"`
	Type  FieldKind `yaml:"type"  json:"type"`
}

// DomainRule restricts a field to an ordered set of allowed literal values.
type DomainRule struct {
	Field   string `yaml:"field"   json:"field"`
	Allowed []any  `yaml:"allowed" json:"allowed"`
}

// RuleConfig is the static rule set driving one validation pass. It is loaded
// once, never mutated, and safe to share across concurrent scans.
type RuleConfig struct {
	RequiredFields   []string         `yaml:"required_fields"   json:"required_fields"`
	FieldTypes       []FieldTypeRule  `yaml:"field_types"       json:"field_types"`
	NamingConvention NamingConvention `yaml:"naming_convention" json:"naming_convention"`
	DomainRules      []DomainRule     `yaml:"domain_rules"      json:"domain_rules"`
}

// DefaultRules returns the built-in configuration used when no rule file is
// present. It describes the canonical demo event shape.
func DefaultRules() RuleConfig {
	return RuleConfig{
		RequiredFields: []string{"event_name", "user_id", "timestamp", "environment"},
		FieldTypes: []FieldTypeRule{
			{Field: "event_name", Type: KindString},
			{Field: "user_id", Type: KindNumber},
			{Field: "timestamp", Type: KindString},
			{Field: "environment", Type: KindString},
			{Field: "source", Type: KindString},
			{Field: "action_type", Type: KindString},
		},
		NamingConvention: ConventionSnakeCase,
		DomainRules: []DomainRule{
			{Field: "environment", Allowed: []any{"dev", "staging", "prod"}},
			{Field: "source", Allowed: []any{"web", "mobile", "server"}},
			{Field: "action_type", Allowed: []any{"LOGIN", "LOGOUT", "PURCHASE", "VIEW"}},
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive
// error. Unknown naming conventions are deliberately accepted: the engine
// treats them as a no-op so future case styles can be configured before a
// checker ships.
func (c RuleConfig) Validate() error {
	// 1. required field names must be non-empty and unique
	seen := make(map[string]bool)
	for _, f := range c.RequiredFields {
		if f == "" {
			return fmt.Errorf("required_fields contains an empty field name")
		}
		if seen[f] {
			return fmt.Errorf("duplicate field %q in required_fields", f)
		}
		seen[f] = true
	}

	// 2. type rules must name a field and a known kind, once each
	seen = make(map[string]bool)
	for _, ft := range c.FieldTypes {
		if ft.Field == "" {
			return fmt.Errorf("field_types contains an entry with no field name")
		}
		if seen[ft.Field] {
			return fmt.Errorf("duplicate field %q in field_types", ft.Field)
		}
		seen[ft.Field] = true
		if !isValidFieldKind(ft.Type) {
			return fmt.Errorf("unknown type %q for field %q (valid: string, number, boolean, object, array)", ft.Type, ft.Field)
		}
	}

	// 3. domain rules must name a field once and allow at least one value
	seen = make(map[string]bool)
	for _, dr := range c.DomainRules {
		if dr.Field == "" {
			return fmt.Errorf("domain_rules contains an entry with no field name")
		}
		if seen[dr.Field] {
			return fmt.Errorf("duplicate field %q in domain_rules", dr.Field)
		}
		seen[dr.Field] = true
		if len(dr.Allowed) == 0 {
			return fmt.Errorf("domain_rules entry for %q has an empty allowed set", dr.Field)
		}
	}

	return nil
}
