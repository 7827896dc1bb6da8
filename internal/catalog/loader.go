package catalog

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/unitlab/internal/logging"
	"github.com/san-kum/unitlab/internal/rational"
	"github.com/san-kum/unitlab/internal/unit"
)

// File is the YAML layout of a unit definition file:
//
//	units:
//	  - name: smoot
//	    symbol: smoot
//	    expr: "inch * 67"
//	  - name: reaumur
//	    affine: { of: "kelvin * 5/4", origin: "273.15" }
type File struct {
	Units []Definition `yaml:"units"`
}

type Definition struct {
	Name   string     `yaml:"name"`
	Symbol string     `yaml:"symbol,omitempty"`
	Expr   string     `yaml:"expr,omitempty"`
	Affine *AffineDef `yaml:"affine,omitempty"`
}

// AffineDef declares a scale by its difference unit expression and its origin
// as an exact decimal in the canonical unit of the dimension.
type AffineDef struct {
	Of     string `yaml:"of"`
	Origin string `yaml:"origin"`
}

// Decode reads one definition file. Unknown keys are errors.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return f, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	return f, nil
}

// Load defines every unit in f in order, so later definitions may refer to
// earlier ones.
func (r *Registry) Load(f File) error {
	for _, d := range f.Units {
		if err := r.define(d); err != nil {
			return fmt.Errorf("unit %q: %w", d.Name, err)
		}
	}
	return nil
}

func (r *Registry) define(d Definition) error {
	switch {
	case d.Affine != nil && d.Expr != "":
		return fmt.Errorf("%w: expr and affine are exclusive", ErrDefinition)
	case d.Affine != nil:
		diff, err := r.Parse(d.Affine.Of)
		if err != nil {
			return err
		}
		origin, err := parseOrigin(d.Affine.Origin)
		if err != nil {
			return err
		}
		label := d.Symbol
		if label == "" {
			label = d.Name
		}
		return r.DefineAffine(d.Name, d.Symbol, unit.NewAffine(diff, origin, label))
	case d.Expr != "":
		u, err := r.Parse(d.Expr)
		if err != nil {
			return err
		}
		return r.Define(d.Name, d.Symbol, u)
	}
	return fmt.Errorf("%w: neither expr nor affine given", ErrDefinition)
}

// LoadFile decodes and loads a single file.
func (r *Registry) LoadFile(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := r.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logging.Debug("loaded unit definitions", zap.String("path", path), zap.Int("units", len(f.Units)))
	return nil
}

// LoadGlob loads every file matching the doublestar patterns, in lexical
// order, and returns the number of files read.
func (r *Registry) LoadGlob(patterns ...string) (int, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return 0, fmt.Errorf("catalog: glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			logging.Warn("unit catalog pattern matched nothing", zap.String("pattern", pattern))
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err := r.LoadFile(p); err != nil {
			return 0, err
		}
	}
	return len(paths), nil
}

// parseOrigin converts an exact decimal to a rational, refusing digits that
// do not fit int64.
func parseOrigin(s string) (rational.Rational, error) {
	if s == "" {
		return rational.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return rational.Zero, fmt.Errorf("%w: origin %q: %w", ErrDefinition, s, err)
	}
	num := d.Coefficient()
	den := big.NewInt(1)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs32(d.Exponent()))), nil)
	if d.Exponent() >= 0 {
		num.Mul(num, scale)
	} else {
		den = scale
	}
	if !num.IsInt64() || !den.IsInt64() || num.Int64() == math.MinInt64 {
		return rational.Zero, fmt.Errorf("%w: origin %q out of range", ErrDefinition, s)
	}
	return rational.New(num.Int64(), den.Int64()), nil
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
