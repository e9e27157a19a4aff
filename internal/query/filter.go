// Package query builds validated, ordered filter specifications for the
// conference and session collections. The output is store-agnostic; the
// postgres repositories render a Spec into parameterized SQL.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Target selects the collection a filter set applies to.
type Target int

const (
	TargetConference Target = iota
	TargetSession
)

// Op is a comparison operator in its SQL form.
type Op string

const (
	OpEQ   Op = "="
	OpGT   Op = ">"
	OpGTEQ Op = ">="
	OpLT   Op = "<"
	OpLTEQ Op = "<="
	OpNE   Op = "!="
)

// operators maps the wire operator names to their SQL form.
var operators = map[string]Op{
	"EQ":   OpEQ,
	"GT":   OpGT,
	"GTEQ": OpGTEQ,
	"LT":   OpLT,
	"LTEQ": OpLTEQ,
	"NE":   OpNE,
}

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindDate
	kindTime
)

type fieldSpec struct {
	Column string
	Kind   valueKind
	// Array fields hold a set of strings; an equality clause matches any
	// element and an inequality clause matches none.
	Array bool
}

var conferenceFields = map[string]fieldSpec{
	"CITY":          {Column: "city", Kind: kindString},
	"TOPIC":         {Column: "topics", Kind: kindString, Array: true},
	"MONTH":         {Column: "month", Kind: kindInt},
	"MAX_ATTENDEES": {Column: "max_attendees", Kind: kindInt},
}

var sessionFields = map[string]fieldSpec{
	"DURATION":        {Column: "duration", Kind: kindInt},
	"DATE":            {Column: "date", Kind: kindDate},
	"START_TIME":      {Column: "start_time", Kind: kindTime},
	"TYPE_OF_SESSION": {Column: "type_of_session", Kind: kindString, Array: true},
	"SPEAKER":         {Column: "speaker", Kind: kindString},
}

// Validation errors. Controllers map these to 400 responses.
var (
	ErrInvalidFieldOrOperator = errors.New("filter contains invalid field or operator")
	ErrMultipleInequalities   = errors.New("inequality filter is allowed on only one field")
	ErrInvalidValue           = errors.New("filter contains invalid value")
)

// Clause is a user-supplied filter in wire form: an uppercase field name, an
// operator name (EQ, GT, GTEQ, LT, LTEQ, NE), and a string value.
type Clause struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Condition is a validated clause with the value coerced to its native type.
type Condition struct {
	Column string
	Op     Op
	Value  any
	Array  bool
}

// Spec is a composed, ordered query ready for execution against a store.
type Spec struct {
	Conditions []Condition
	// OrderBy lists sort columns, all ascending. When an inequality field
	// exists it comes first; name is always the final key.
	OrderBy []string
}

// Build validates the clauses against the target's field whitelist, coerces
// values, enforces the single-inequality-field rule, and derives the sort
// order. It does not touch any store.
func Build(target Target, clauses []Clause) (*Spec, error) {
	fields := conferenceFields
	if target == TargetSession {
		fields = sessionFields
	}

	spec := &Spec{Conditions: make([]Condition, 0, len(clauses))}
	inequalityColumn := ""

	for _, c := range clauses {
		fs, ok := fields[c.Field]
		if !ok {
			return nil, fmt.Errorf("%w: field %q", ErrInvalidFieldOrOperator, c.Field)
		}
		op, ok := operators[c.Operator]
		if !ok {
			return nil, fmt.Errorf("%w: operator %q", ErrInvalidFieldOrOperator, c.Operator)
		}

		// Every operator except "=" is an inequality; all inequality
		// clauses must target the same field.
		if op != OpEQ {
			if inequalityColumn != "" && inequalityColumn != fs.Column {
				return nil, ErrMultipleInequalities
			}
			inequalityColumn = fs.Column
		}

		value, err := coerce(fs.Kind, c.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", ErrInvalidValue, c.Field, err)
		}

		spec.Conditions = append(spec.Conditions, Condition{
			Column: fs.Column,
			Op:     op,
			Value:  value,
			Array:  fs.Array,
		})
	}

	if inequalityColumn != "" && inequalityColumn != "name" {
		spec.OrderBy = []string{inequalityColumn, "name"}
	} else {
		spec.OrderBy = []string{"name"}
	}
	return spec, nil
}

func coerce(kind valueKind, raw string) (any, error) {
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("expected integer, got %q", raw)
		}
		return n, nil
	case kindDate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("expected YYYY-MM-DD date, got %q", raw)
		}
		return t, nil
	case kindTime:
		t, err := time.Parse("15:04", raw)
		if err != nil {
			t, err = time.Parse("15:04:05", raw)
		}
		if err != nil {
			return nil, fmt.Errorf("expected HH:MM time, got %q", raw)
		}
		// TIME columns compare against the canonical string form.
		return t.Format("15:04:05"), nil
	default:
		return raw, nil
	}
}
