package quantity

import (
	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/unit"
)

type options struct {
	bound uint64
	lossy bool
	cache *conversion.Cache
}

// Option configures NewConverter.
type Option func(*options)

// WithBound declares the largest absolute value the converter will see.
func WithBound(b uint64) Option { return func(o *options) { o.bound = b } }

// Lossy acknowledges truncation for integral types.
func Lossy() Option { return func(o *options) { o.lossy = true } }

// WithCache plans through c instead of conversion.DefaultCache.
func WithCache(c *conversion.Cache) Option { return func(o *options) { o.cache = c } }

// Converter is a conversion vetted once for every value within its bound.
type Converter[T Number] struct {
	plan conversion.Plan
}

// NewConverter plans the conversion from one unit to another for T. Plans
// that could overflow within the bound are refused, and so are truncating
// plans unless Lossy is given.
func NewConverter[T Number](from, to unit.Unit, opts ...Option) (*Converter[T], error) {
	o := options{cache: conversion.DefaultCache}
	for _, opt := range opts {
		opt(&o)
	}
	p := o.cache.Plan(from, to, conversion.RepOf[T]().WithBound(o.bound))
	if err := p.Check(o.lossy); err != nil {
		return nil, err
	}
	return &Converter[T]{plan: p}, nil
}

// MustConverter is NewConverter for package-level definitions.
func MustConverter[T Number](from, to unit.Unit, opts ...Option) *Converter[T] {
	c, err := NewConverter[T](from, to, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Converter[T]) Plan() conversion.Plan { return c.plan }

// Convert applies the plan to a raw value.
func (c *Converter[T]) Convert(v T) T { return conversion.Apply(c.plan, v) }

// Quantity converts q, which must be in the converter's source unit.
func (c *Converter[T]) Quantity(q Quantity[T]) (Quantity[T], error) {
	if !q.unit.Equal(c.plan.From) {
		return q, unit.ErrIncompatible
	}
	return Of(c.Convert(q.value), c.plan.To), nil
}
