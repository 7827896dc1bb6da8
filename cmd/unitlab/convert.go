package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/unitlab/internal/catalog"
	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/logging"
	"github.com/san-kum/unitlab/internal/quantity"
	"github.com/san-kum/unitlab/internal/unit"
)

func convertCommand(cmd *cobra.Command, args []string) error {
	rep, err := resolveRep(cmd)
	if err != nil {
		return err
	}
	acknowledge := cfg.Lossy
	if cmd.Flags().Changed("lossy") {
		acknowledge = lossy
	}
	out, err := convertValue(registry, rep, args[0], args[1], args[2], acknowledge)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", out, args[2])
	return nil
}

// convertValue parses raw as the Go type named by rep and converts it. Units
// are resolved as expressions, or as scales when either side is affine.
func convertValue(reg *catalog.Registry, rep conversion.Rep, raw, from, to string, lossy bool) (string, error) {
	logging.Debug("convert", zap.String("value", raw), zap.String("from", from), zap.String("to", to), zap.Stringer("rep", rep))
	switch rep.Name() {
	case "int8":
		return convertAs[int8](reg, rep, raw, from, to, lossy)
	case "int16":
		return convertAs[int16](reg, rep, raw, from, to, lossy)
	case "int32":
		return convertAs[int32](reg, rep, raw, from, to, lossy)
	case "int64":
		return convertAs[int64](reg, rep, raw, from, to, lossy)
	case "uint8":
		return convertAs[uint8](reg, rep, raw, from, to, lossy)
	case "uint16":
		return convertAs[uint16](reg, rep, raw, from, to, lossy)
	case "uint32":
		return convertAs[uint32](reg, rep, raw, from, to, lossy)
	case "uint64":
		return convertAs[uint64](reg, rep, raw, from, to, lossy)
	case "float32":
		return convertAs[float32](reg, rep, raw, from, to, lossy)
	}
	return convertAs[float64](reg, rep, raw, from, to, lossy)
}

func convertAs[T conversion.Number](reg *catalog.Registry, rep conversion.Rep, raw, from, to string, lossy bool) (string, error) {
	v, err := parseAs[T](raw, rep)
	if err != nil {
		return "", err
	}
	if rep.Bound != 0 && conversion.AbsUint64(v) > rep.Bound {
		return "", fmt.Errorf("%w: %v exceeds declared bound %d", conversion.ErrOverflow, v, rep.Bound)
	}

	fe, fok := reg.Entry(from)
	te, tok := reg.Entry(to)
	if (fok && fe.Affine) || (tok && te.Affine) {
		if !fok || !tok {
			return "", fmt.Errorf("%w: %s -> %s", catalog.ErrUnknownUnit, from, to)
		}
		p := quantity.PointOf(v, fe.AsScale())
		if lossy {
			p, err = p.InLossy(te.AsScale())
		} else {
			p, err = p.In(te.AsScale())
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprint(p.Value()), nil
	}

	fu, err := reg.Parse(from)
	if err != nil {
		return "", err
	}
	tu, err := reg.Parse(to)
	if err != nil {
		return "", err
	}
	q := quantity.Of(v, fu)
	if rep.Bound != 0 {
		return convertBounded(q, tu, rep.Bound, lossy)
	}
	if lossy {
		q, err = q.InLossy(tu)
	} else {
		q, err = q.In(tu)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprint(q.Value()), nil
}

// convertBounded vets the conversion once for every value up to bound, the
// same verdict classify reports, and only then applies it.
func convertBounded[T conversion.Number](q quantity.Quantity[T], to unit.Unit, bound uint64, lossy bool) (string, error) {
	opts := []quantity.Option{quantity.WithBound(bound)}
	if lossy {
		opts = append(opts, quantity.Lossy())
	}
	c, err := quantity.NewConverter[T](q.Unit(), to, opts...)
	if err != nil {
		return "", err
	}
	out, err := c.Quantity(q)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(out.Value()), nil
}

func parseAs[T conversion.Number](raw string, rep conversion.Rep) (T, error) {
	switch {
	case rep.Kind == conversion.KindFloating:
		f, err := strconv.ParseFloat(raw, rep.Bits)
		return T(f), err
	case rep.Signed:
		n, err := strconv.ParseInt(raw, 10, rep.Bits)
		return T(n), err
	}
	n, err := strconv.ParseUint(raw, 10, rep.Bits)
	return T(n), err
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
