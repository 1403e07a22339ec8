package spacefile

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(pointsInCarrier, Descriptor{})
}

// pointsInCarrier rejects opens, base or subbase sets that mention a point
// missing from the carrier.
func pointsInCarrier(sl validator.StructLevel) {
	d := sl.Current().Interface().(Descriptor)
	check := func(field string, sets [][]string) {
		for i, set := range sets {
			for _, p := range set {
				if !slices.Contains(d.Carrier, p) {
					sl.ReportError(sets, fmt.Sprintf("%s[%d]", field, i), field, "incarrier", p)
					return
				}
			}
		}
	}
	check("Opens", d.Opens)
	check("Base", d.Base)
	check("Subbase", d.Subbase)
}

// Validate checks doc against its struct tags and the carrier rule.
func Validate(doc *Document) error {
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
