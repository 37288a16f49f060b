package types

// FieldKind describes the value type of an extraction schema field.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldInt
	FieldStringList
)

// Field is one named slot in an extraction schema. Every field carries a
// default so downstream composition never sees an absent value.
type Field struct {
	Name    string
	Kind    FieldKind
	Default any
}

// Schema is the fixed set of fields one intent extracts from free text.
type Schema struct {
	Fields []Field
}

// Defaults returns a fresh ParamSet carrying every field's default.
func (s Schema) Defaults() ParamSet {
	params := make(ParamSet, len(s.Fields))
	for _, f := range s.Fields {
		switch f.Kind {
		case FieldStringList:
			// Copy so callers can append without aliasing the schema.
			def, _ := f.Default.([]string)
			params[f.Name] = append([]string(nil), def...)
		default:
			params[f.Name] = f.Default
		}
	}
	return params
}

// Find returns the schema field with the given name.
func (s Schema) Find(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ParamSet holds extracted parameters keyed by schema field name.
type ParamSet map[string]any

// String returns the string value for key, or fallback when the value is
// missing, empty or not a string.
func (p ParamSet) String(key, fallback string) string {
	if v, ok := p[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Int returns the integer value for key, tolerating the float64 values
// encoding/json produces, or fallback.
func (p ParamSet) Int(key string, fallback int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

// StringList returns the string-list value for key, tolerating []any from
// encoding/json, or nil.
func (p ParamSet) StringList(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
