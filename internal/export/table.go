// Package export writes conversion tables for a unit as JSON or CSV.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/san-kum/unitlab/internal/catalog"
	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/unit"
)

type Row struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Class  string  `json:"class"`
	Ratio  string  `json:"ratio"`
	Factor float64 `json:"factor"`
	Num    uint64  `json:"num,omitempty"`
	Den    uint64  `json:"den,omitempty"`
	Order  string  `json:"order,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Table lists the plans from one unit to every compatible registered unit.
type Table struct {
	Unit      string    `json:"unit"`
	Dimension string    `json:"dimension"`
	Rep       string    `json:"rep"`
	Generated time.Time `json:"generated"`
	Rows      []Row     `json:"rows"`
}

// Build plans conversions from the named unit to every other registered
// ratio unit of the same dimension.
func Build(ctx context.Context, reg *catalog.Registry, name string, rep conversion.Rep, cache *conversion.Cache) (*Table, error) {
	from, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	t := &Table{
		Unit:      name,
		Dimension: from.Dimension().String(),
		Rep:       rep.String(),
		Generated: time.Now().UTC(),
	}
	var pairs []conversion.Pair
	for _, e := range reg.Entries() {
		if e.Affine || !unit.Convertible(from, e.Unit) || e.Unit.Equal(from) {
			continue
		}
		pairs = append(pairs, conversion.Pair{From: from, To: e.Unit})
	}
	plans, err := cache.PlanAll(ctx, pairs, rep)
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		t.Rows = append(t.Rows, rowOf(p))
	}
	return t, nil
}

func rowOf(p conversion.Plan) Row {
	r := Row{
		From:  p.From.String(),
		To:    p.To.String(),
		Class: p.Class.String(),
		Ratio: p.Ratio.String(),
	}
	if !math.IsInf(p.Factor, 0) && !math.IsNaN(p.Factor) {
		r.Factor = p.Factor
	}
	if p.Class == conversion.Rejected {
		r.Error = p.Err.Error()
		return r
	}
	if !p.Irrational {
		r.Num, r.Den = p.Num, p.Den
		if p.Rep.Kind == conversion.KindIntegral {
			r.Order = p.Order.String()
		}
	}
	return r
}

func WriteJSON(w io.Writer, t *Table) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

var csvHeader = []string{"from", "to", "class", "ratio", "factor", "num", "den", "order", "error"}

func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range t.Rows {
		record := []string{
			r.From,
			r.To,
			r.Class,
			r.Ratio,
			strconv.FormatFloat(r.Factor, 'g', -1, 64),
			strconv.FormatUint(r.Num, 10),
			strconv.FormatUint(r.Den, 10),
			r.Order,
			r.Error,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes t to path in the given format (json or csv).
func Save(path, format string, t *Table) error {
	write, err := writer(format)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return write(file, t)
}

// Write writes t to w in the given format.
func Write(w io.Writer, format string, t *Table) error {
	write, err := writer(format)
	if err != nil {
		return err
	}
	return write(w, t)
}

func writer(format string) (func(io.Writer, *Table) error, error) {
	switch format {
	case "json":
		return WriteJSON, nil
	case "csv":
		return WriteCSV, nil
	}
	return nil, fmt.Errorf("export: unknown format %q", format)
}
