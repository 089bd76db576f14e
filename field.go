package scholarly

import "strings"

// Field identifies one block of a profile summary.
// The declaration order is the order blocks appear in a summary.
type Field int

// Field constants in summary order.
const (
	FieldName Field = iota
	FieldAffiliation
	FieldSummary
	FieldInterests
	FieldMetrics
	FieldPublications

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldName:         "name",
	FieldAffiliation:  "affiliation",
	FieldSummary:      "summary",
	FieldInterests:    "interests",
	FieldMetrics:      "metrics",
	FieldPublications: "publications",
}

// String returns the field's name as accepted by ParseField.
func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// ParseField returns the Field with the given name.
// Returns EINVALID for unknown names.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == name {
			return Field(f), nil
		}
	}
	return 0, Errorf(EINVALID, "unknown field %q (valid: %s)", name, strings.Join(fieldNames[:], ", "))
}

// FieldSet is a set of requested summary fields.
type FieldSet uint8

// NewFieldSet returns a set containing the given fields.
func NewFieldSet(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s = s.With(f)
	}
	return s
}

// AllFields returns a set containing every field.
func AllFields() FieldSet {
	return FieldSet(1<<fieldCount - 1)
}

// ParseFields parses field names into a set. Duplicates are ignored.
func ParseFields(names []string) (FieldSet, error) {
	var s FieldSet
	for _, name := range names {
		f, err := ParseField(name)
		if err != nil {
			return 0, err
		}
		s = s.With(f)
	}
	return s, nil
}

// With returns a copy of the set with f added.
func (s FieldSet) With(f Field) FieldSet {
	if f < 0 || f >= fieldCount {
		return s
	}
	return s | 1<<f
}

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	if f < 0 || f >= fieldCount {
		return false
	}
	return s&(1<<f) != 0
}

// Fields returns the members of the set in summary order.
func (s FieldSet) Fields() []Field {
	var fields []Field
	for f := Field(0); f < fieldCount; f++ {
		if s.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// Names returns the member names in summary order.
func (s FieldSet) Names() []string {
	fields := s.Fields()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.String())
	}
	return names
}

// String returns the member names joined by commas.
func (s FieldSet) String() string {
	return strings.Join(s.Names(), ",")
}

// MarshalText encodes the set as comma-separated names.
func (s FieldSet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes comma-separated names.
func (s *FieldSet) UnmarshalText(text []byte) error {
	var names []string
	for _, name := range strings.Split(string(text), ",") {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	parsed, err := ParseFields(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
