package validator

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/hint"
)

var ErrMalformedTower = errors.New("tower is not a permutation of floors, colors and animals")

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports the hints t violates. A tower that repeats a floor,
// color or animal is rejected with ErrMalformedTower.
func (v *FastValidator) Validate(ctx context.Context, t domain.Tower, hints []hint.Hint) (bool, []hint.Hint, error) {
	if !wellFormed(t) {
		return false, nil, ErrMalformedTower
	}
	rows := t.Assignments()
	violated := lo.Filter(hints, func(h hint.Hint, _ int) bool {
		return !h.Satisfied(rows)
	})
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	return len(violated) == 0, violated, nil
}

func wellFormed(t domain.Tower) bool {
	for i, fa := range t {
		if fa.Floor != domain.Floor(i+1) {
			return false
		}
	}
	colors := lo.Uniq(lo.Map(t[:], func(fa domain.FloorAssignment, _ int) domain.Color { return fa.Color }))
	animals := lo.Uniq(lo.Map(t[:], func(fa domain.FloorAssignment, _ int) domain.Animal { return fa.Animal }))
	valid := lo.EveryBy(t[:], func(fa domain.FloorAssignment) bool {
		return fa.Color >= 0 && int(fa.Color) < domain.Size && fa.Animal >= 0 && int(fa.Animal) < domain.Size
	})
	return valid && len(colors) == domain.Size && len(animals) == domain.Size
}
