package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/unitlab/internal/catalog"
	"github.com/san-kum/unitlab/internal/conversion"
)

func rowTo(t *testing.T, tbl *Table, to string) Row {
	t.Helper()
	for _, r := range tbl.Rows {
		if r.To == to {
			return r
		}
	}
	t.Fatalf("no row to %s", to)
	return Row{}
}

func TestBuild(t *testing.T) {
	tbl, err := Build(context.Background(), catalog.Default(), "foot", conversion.Int32, conversion.NewCache(nil))
	require.NoError(t, err)

	assert.Equal(t, "foot", tbl.Unit)
	assert.Equal(t, "L", tbl.Dimension)
	assert.Len(t, tbl.Rows, 8)

	in := rowTo(t, tbl, "in")
	assert.Equal(t, "exact", in.Class)
	assert.Equal(t, uint64(12), in.Num)
	assert.Equal(t, uint64(1), in.Den)
	assert.Equal(t, 12.0, in.Factor)

	mi := rowTo(t, tbl, "mi")
	assert.Equal(t, "truncating", mi.Class)
	assert.Equal(t, uint64(5280), mi.Den)
	assert.Empty(t, mi.Error)
}

func TestBuild_Rejected(t *testing.T) {
	tbl, err := Build(context.Background(), catalog.Default(), "ft", conversion.Int8, conversion.NewCache(nil))
	require.NoError(t, err)

	in := rowTo(t, tbl, "in")
	assert.Equal(t, "rejected", in.Class)
	assert.Contains(t, in.Error, "overflow")
}

func TestBuild_UnknownUnit(t *testing.T) {
	_, err := Build(context.Background(), catalog.Default(), "cubit", conversion.Int32, conversion.NewCache(nil))
	assert.ErrorIs(t, err, catalog.ErrUnknownUnit)
}

func TestWriteJSON(t *testing.T) {
	tbl, err := Build(context.Background(), catalog.Default(), "deg", conversion.Float64, conversion.NewCache(nil))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", tbl))

	var got Table
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, tbl.Rep, got.Rep)
	require.Len(t, got.Rows, 2)

	rad := rowTo(t, &got, "rad")
	assert.Equal(t, "floating", rad.Class)
	assert.Zero(t, rad.Num)
	assert.InDelta(t, 0.017453292519943295, rad.Factor, 1e-18)
}

func TestSaveCSV(t *testing.T) {
	tbl, err := Build(context.Background(), catalog.Default(), "s", conversion.Int64, conversion.NewCache(nil))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seconds.csv")
	require.NoError(t, Save(path, "csv", tbl))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "s", records[1][0])
}

func TestUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "xml", &Table{}))
	assert.Error(t, Save(filepath.Join(t.TempDir(), "x"), "xml", &Table{}))
}
