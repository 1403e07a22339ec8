// Package builder defines shared constants used by the topology generators.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodDiscrete is the canonical name for the Discrete constructor.
	MethodDiscrete = "Discrete"
	// MethodIndiscrete is the canonical name for the Indiscrete constructor.
	MethodIndiscrete = "Indiscrete"
	// MethodFromBase is the canonical name for the FromBase constructor.
	MethodFromBase = "FromBase"
	// MethodFromSubbase is the canonical name for the FromSubbase constructor.
	MethodFromSubbase = "FromSubbase"
	// MethodProduct is the canonical name for the Product constructor.
	MethodProduct = "Product"
	// MethodCoproduct is the canonical name for the Coproduct constructor.
	MethodCoproduct = "Coproduct"
	// MethodSubspace is the canonical name for the Subspace constructor.
	MethodSubspace = "Subspace"
	// MethodInitial is the canonical name for the Initial constructor.
	MethodInitial = "Initial"
	// MethodFinal is the canonical name for the Final constructor.
	MethodFinal = "Final"
)

//-----------------------------------------------------------------------------
// Enumeration Limits
//-----------------------------------------------------------------------------

// DefaultMaxPowerSet is the largest carrier Discrete and Final enumerate by
// default. 2^20 candidate subsets is already far past the sizes lvtopo is
// meant for; raise it explicitly with WithMaxPowerSet.
const DefaultMaxPowerSet = 20

// HardMaxPowerSet is the absolute ceiling imposed by 64-bit subset masks.
const HardMaxPowerSet = 63
