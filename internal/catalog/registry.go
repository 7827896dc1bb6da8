// Package catalog defines the stock units and a name registry that resolves
// unit names, symbols and unit expressions.
//
// The registry is filled before use, either from the package-level
// definitions or from YAML files, and then frozen. A frozen registry is
// read-only and safe for concurrent lookups.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/san-kum/unitlab/internal/dimension"
	"github.com/san-kum/unitlab/internal/logging"
	"github.com/san-kum/unitlab/internal/rational"
	"github.com/san-kum/unitlab/internal/unit"
)

// Entry is one registered unit. Exactly one of Unit and Scale is meaningful,
// selected by Affine.
type Entry struct {
	Name   string
	Symbol string
	Unit   unit.Unit
	Scale  unit.AffineUnit
	Affine bool
}

func (e Entry) Dimension() dimension.Dimension {
	if e.Affine {
		return e.Scale.Dimension()
	}
	return e.Unit.Dimension()
}

// AsScale returns the entry as an affine scale. Ratio units measure from the
// canonical zero.
func (e Entry) AsScale() unit.AffineUnit {
	if e.Affine {
		return e.Scale
	}
	return unit.NewAffine(e.Unit, rational.Zero, e.Unit.Label())
}

func (e Entry) String() string {
	if e.Affine {
		return fmt.Sprintf("%s (%s): %s", e.Name, e.Symbol, e.Scale)
	}
	return fmt.Sprintf("%s (%s): %s", e.Name, e.Symbol, e.Unit.Dimension())
}

type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []*Entry
	frozen  bool
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Builtin returns an unfrozen registry holding the stock units.
func Builtin() *Registry {
	r := NewRegistry()
	for _, b := range builtins {
		r.mustAdd(&Entry{Name: b.name, Symbol: b.symbol, Unit: b.unit.Labeled(b.symbol)})
	}
	for _, s := range builtinScales {
		r.mustAdd(&Entry{Name: s.name, Symbol: s.symbol, Scale: s.unit, Affine: true})
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the frozen registry of stock units.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = Builtin()
		defaultRegistry.Freeze()
	})
	return defaultRegistry
}

// Define registers a ratio unit under a name and an optional symbol.
func (r *Registry) Define(name, symbol string, u unit.Unit) error {
	label := symbol
	if label == "" {
		label = name
	}
	return r.add(&Entry{Name: name, Symbol: symbol, Unit: u.Labeled(label)})
}

// DefineAffine registers an affine scale.
func (r *Registry) DefineAffine(name, symbol string, a unit.AffineUnit) error {
	return r.add(&Entry{Name: name, Symbol: symbol, Scale: a, Affine: true})
}

func (r *Registry) mustAdd(e *Entry) {
	if err := r.add(e); err != nil {
		panic(err)
	}
}

func (r *Registry) add(e *Entry) error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrDefinition)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: cannot define %s", ErrFrozen, e.Name)
	}
	for _, k := range e.keys() {
		if _, ok := r.entries[k]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicate, k)
		}
	}
	for _, k := range e.keys() {
		r.entries[k] = e
	}
	r.order = append(r.order, e)
	return nil
}

func (e *Entry) keys() []string {
	if e.Symbol == "" || e.Symbol == e.Name {
		return []string{e.Name}
	}
	return []string{e.Name, e.Symbol}
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	n := len(r.order)
	r.mu.Unlock()
	logging.Info("unit registry frozen", zap.Int("units", n))
}

func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Entry finds a unit by name or symbol.
func (r *Registry) Entry(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries lists every registered unit sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.order))
	for _, e := range r.order {
		out = append(out, *e)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup resolves a ratio unit. Affine scales are refused since they cannot
// take part in unit arithmetic.
func (r *Registry) Lookup(name string) (unit.Unit, error) {
	e, ok := r.Entry(name)
	switch {
	case !ok:
		return unit.One, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	case e.Affine:
		return unit.One, fmt.Errorf("%w: %s is an affine scale", unit.ErrAffineComposition, name)
	}
	return e.Unit, nil
}

// LookupScale resolves name as an affine scale. Ratio units are returned as
// scales whose origin is the canonical zero, so kelvin and celsius compare.
func (r *Registry) LookupScale(name string) (unit.AffineUnit, error) {
	e, ok := r.Entry(name)
	if !ok {
		return unit.AffineUnit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return e.AsScale(), nil
}

// Parse resolves a unit expression such as "kg * m / s^2" against r.
func (r *Registry) Parse(expr string) (unit.Unit, error) {
	return parseExpr(expr, r.Lookup)
}
