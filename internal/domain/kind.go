package domain

// FieldKind is the type tag of a field value. Lists are tagged "array"
// distinctly from generic objects; all other values use their primitive kind.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindObject  FieldKind = "object"
	KindArray   FieldKind = "array"
	KindNull    FieldKind = "null"
)

// ValidFieldKinds enumerates the kinds a type rule may expect.
var ValidFieldKinds = []FieldKind{
	KindString, KindNumber, KindBoolean, KindObject, KindArray,
}

// KindOf returns the type tag for a decoded field value.
func KindOf(v any) FieldKind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBoolean
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case []any:
		return KindArray
	default:
		return KindObject
	}
}

func isValidFieldKind(k FieldKind) bool {
	for _, v := range ValidFieldKinds {
		if v == k {
			return true
		}
	}
	return false
}
