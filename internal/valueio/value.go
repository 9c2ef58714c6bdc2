package valueio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/unicode/norm"
)

var ErrUnknownKind = errors.New("unknown value type")

var ErrInvalidValue = errors.New("invalid value")

type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindTime
)

var kindNames = map[Kind]string{
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindTime:   "time",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer":
		return KindInt, nil
	case "float", "number":
		return KindFloat, nil
	case "string", "str", "text":
		return KindString, nil
	case "time", "date", "datetime":
		return KindTime, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Whether input files for this kind hold one value per line (values may contain spaces), rather than whitespace separated tokens.
func (k Kind) LineOriented() bool {
	return k == KindString || k == KindTime
}

// A single input value. Only the field matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
	Time  time.Time
}

func Int(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

func Float(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

func String(v string) Value {
	return Value{Kind: KindString, Str: v}
}

func Time(v time.Time) Value {
	return Value{Kind: KindTime, Time: v}
}

// Parses a single token as the given kind. Strings are NFC normalized; times are parsed from any common layout, in UTC unless the token carries a zone.
func Parse(kind Kind, tok string) (Value, error) {
	switch kind {
	case KindInt:
		i, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an int: %w", ErrInvalidValue, tok, err)
		}
		return Int(i), nil
	case KindFloat:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a float: %w", ErrInvalidValue, tok, err)
		}
		// NaN is unordered, which would break the tree's ordering
		if math.IsNaN(f) {
			return Value{}, fmt.Errorf("%w: NaN can not be ordered", ErrInvalidValue)
		}
		return Float(f), nil
	case KindString:
		if tok == "" {
			return Value{}, fmt.Errorf("%w: empty string", ErrInvalidValue)
		}
		return String(norm.NFC.String(tok)), nil
	case KindTime:
		t, err := dateparse.ParseIn(tok, time.UTC)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a date/time: %w", ErrInvalidValue, tok, err)
		}
		return Time(t.UTC()), nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return v.Str
	case KindTime:
		return v.Time.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("<%s>", v.Kind)
}

// Natural ordering: numeric for ints and floats, byte-wise for strings, chronological for times. Values of different kinds order by kind.
func Less(a, b Value) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	switch a.Kind {
	case KindInt:
		return a.Int < b.Int
	case KindFloat:
		return a.Float < b.Float
	case KindString:
		return a.Str < b.Str
	case KindTime:
		return a.Time.Before(b.Time)
	}
	return false
}
