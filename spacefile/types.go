package spacefile

import (
	"errors"

	"github.com/katalvlaran/lvtopo/core"
)

// ErrInvalid indicates a document that fails validation. The wrapped error
// is a validator.ValidationErrors listing every offending field.
var ErrInvalid = errors.New("spacefile: invalid document")

// ErrUnknownSpace indicates a lookup of a name the document does not define.
var ErrUnknownSpace = errors.New("spacefile: unknown space")

// Kind selects the generator for a descriptor.
type Kind string

// Descriptor kinds.
const (
	KindExplicit   Kind = "explicit"
	KindDiscrete   Kind = "discrete"
	KindIndiscrete Kind = "indiscrete"
	KindBase       Kind = "base"
	KindSubbase    Kind = "subbase"
)

// Document is the top-level YAML value.
type Document struct {
	// MaxPowerSet overrides builder.DefaultMaxPowerSet for discrete spaces.
	MaxPowerSet int          `yaml:"max_power_set,omitempty" validate:"omitempty,min=1,max=63"`
	Spaces      []Descriptor `yaml:"spaces" validate:"required,min=1,unique=Name,dive"`
}

// Descriptor describes one space.
type Descriptor struct {
	Name    string     `yaml:"name" validate:"required"`
	Kind    Kind       `yaml:"kind" validate:"required,oneof=explicit discrete indiscrete base subbase"`
	Carrier []string   `yaml:"carrier" validate:"unique"`
	Opens   [][]string `yaml:"opens,omitempty" validate:"required_if=Kind explicit,excluded_unless=Kind explicit"`
	Base    [][]string `yaml:"base,omitempty" validate:"excluded_unless=Kind base"`
	Subbase [][]string `yaml:"subbase,omitempty" validate:"excluded_unless=Kind subbase"`
}

var pointEq = core.NewEq("string", func(a, b string) bool { return a == b })

// Eq returns the witness shared by every space this package builds.
func Eq() *core.Eq[string] { return pointEq }
