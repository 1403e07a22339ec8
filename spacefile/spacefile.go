package spacefile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/core"
)

// Decode reads one YAML document from r and validates it.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("spacefile: decode: %w", err)
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load decodes the document stored at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spacefile: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Encode validates doc and writes it to w as YAML.
func Encode(w io.Writer, doc *Document) error {
	if err := Validate(doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("spacefile: encode: %w", err)
	}
	return enc.Close()
}

// Describe captures space as an explicit descriptor named name.
func Describe(name string, space *core.Space[string]) Descriptor {
	opens := space.Opens()
	for i, u := range opens {
		if u == nil {
			opens[i] = []string{}
		}
	}
	return Descriptor{Name: name, Kind: KindExplicit, Carrier: space.Carrier(), Opens: opens}
}

// Build constructs the space d describes. Explicit descriptors are checked
// against the topology axioms; the generated kinds satisfy them by
// construction.
//
// Errors: builder and core errors, core.ErrAxiomViolation for an explicit
// family that is not a topology.
func (d Descriptor) Build(opts ...builder.BuilderOption) (*core.Space[string], error) {
	var (
		space *core.Space[string]
		err   error
	)
	switch d.Kind {
	case KindExplicit:
		space, err = core.NewSpace(pointEq, d.Carrier, d.Opens)
		if err == nil {
			err = core.Check(pointEq, space)
		}
	case KindDiscrete:
		space, err = builder.Discrete(pointEq, d.Carrier, opts...)
	case KindIndiscrete:
		space, err = builder.Indiscrete(pointEq, d.Carrier, opts...)
	case KindBase:
		space, err = builder.FromBase(pointEq, d.Carrier, d.Base, opts...)
	case KindSubbase:
		space, err = builder.FromSubbase(pointEq, d.Carrier, d.Subbase, opts...)
	default:
		err = fmt.Errorf("kind %q: %w", d.Kind, ErrInvalid)
	}
	if err != nil {
		return nil, fmt.Errorf("spacefile: %s: %w", d.Name, err)
	}
	return space, nil
}

// Lookup returns the descriptor named name.
func (doc *Document) Lookup(name string) (Descriptor, error) {
	for _, d := range doc.Spaces {
		if d.Name == name {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%q: %w", name, ErrUnknownSpace)
}

// Build constructs every space in doc, keyed by name.
func (doc *Document) Build() (map[string]*core.Space[string], error) {
	var opts []builder.BuilderOption
	if doc.MaxPowerSet > 0 {
		opts = append(opts, builder.WithMaxPowerSet(doc.MaxPowerSet))
	}

	out := make(map[string]*core.Space[string], len(doc.Spaces))
	for _, d := range doc.Spaces {
		space, err := d.Build(opts...)
		if err != nil {
			return nil, err
		}
		out[d.Name] = space
	}
	return out, nil
}
