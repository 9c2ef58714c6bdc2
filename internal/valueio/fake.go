package valueio

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var ErrFakeExhausted = errors.New("could not generate enough distinct values")

// Generates n distinct random values of the given kind. Output is deterministic for a given seed.
func Fake(kind Kind, n int, seed int64) ([]Value, error) {
	if _, ok := kindNames[kind]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	faker := gofakeit.New(seed)
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	// wide enough that collisions stay rare
	span := 10*n + 10

	out := make([]Value, 0, n)
	seen := make(map[string]bool, n)
	maxAttempts := 100*n + 100
	for attempt := 0; len(out) < n; attempt++ {
		if attempt >= maxAttempts {
			return nil, fmt.Errorf("%w: %d of %d %s values", ErrFakeExhausted, len(out), n, kind)
		}
		var v Value
		switch kind {
		case KindInt:
			v = Int(int64(faker.Number(-span, span)))
		case KindFloat:
			f := math.Round(faker.Float64Range(-float64(span), float64(span))*1000) / 1000
			if f == 0 {
				// drop negative zero, which orders equal to zero
				f = 0
			}
			v = Float(f)
		case KindString:
			v = String(faker.Adjective() + "-" + faker.Animal())
		case KindTime:
			v = Time(faker.DateRange(start, end).UTC().Truncate(time.Second))
		}
		key := v.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out, nil
}
