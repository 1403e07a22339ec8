// Package spacefile reads and writes finite spaces over string points as
// YAML descriptors.
//
// A document lists named spaces; each names a generator kind and the data
// that generator needs:
//
//	max_power_set: 12
//	spaces:
//	  - name: weather
//	    kind: indiscrete
//	    carrier: [Sunny, Rainy]
//	  - name: sierpinski
//	    kind: explicit
//	    carrier: ["0", "1"]
//	    opens: [[], ["1"], ["0", "1"]]
//	  - name: chain
//	    kind: subbase
//	    carrier: [a, b, c]
//	    subbase: [[a, b], [b, c]]
//
// Documents are decoded with gopkg.in/yaml.v3 (unknown fields rejected) and
// validated with go-playground/validator struct tags before any space is
// built. Every space built here shares one equality witness, Eq(), so maps
// between them compose.
package spacefile
