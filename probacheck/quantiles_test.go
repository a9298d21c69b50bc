package probacheck

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-proba/table"
)

func TestQuantiles_ValidTable(t *testing.T) {
	t.Parallel()

	report := Quantiles{}.ValidateWithReport(quantileTable(t), MetadataAll(), "pred")

	require.True(t, report.Valid)
	assert.Empty(t, report.Message)
	assert.Equal(t, map[string]bool{
		FieldIsEmpty:      false,
		FieldIsUnivariate: true,
		FieldHasNaNs:      false,
	}, report.Metadata)
}

func TestQuantiles_NonTableInputs(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		obj  any
	}{
		{name: "nil", obj: nil},
		{name: "plain slice", obj: []float64{1, 2, 3}},
		{name: "number", obj: 42.0},
		{name: "string", obj: "not a table"},
		{name: "map", obj: map[string]float64{"y": 1}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			report := Quantiles{}.ValidateWithReport(tc.obj, MetadataAll(), "y_pred")

			require.False(t, report.Valid)
			assert.Equal(t, "y_pred should be a table", report.Message)
			assert.Nil(t, report.Metadata)
		})
	}
}

func TestQuantiles_DuplicateColumnKeys(t *testing.T) {
	t.Parallel()

	tab := table.MustNew(table.IntIndex{0},
		table.NewColumn(table.QuantileKey("y", 0.1), 1.0),
		table.NewColumn(table.QuantileKey("y", 0.1), 2.0))

	report := Quantiles{}.ValidateWithReport(tab, MetadataNone(), "")

	require.False(t, report.Valid)
	assert.Equal(t, "column indices must be unique", report.Message)
}

func TestQuantiles_NonNumericColumn(t *testing.T) {
	t.Parallel()

	tab := table.MustNew(table.IntIndex{0, 1},
		table.NewColumn(table.QuantileKey("y", 0.1), 1.0, 2.0),
		table.NewColumn(table.QuantileKey("y", 0.9), "a", "b"))

	report := Quantiles{}.ValidateWithReport(tab, MetadataNone(), "pred")

	require.False(t, report.Valid)
	assert.Contains(t, report.Message, "pred should only have numeric dtype columns")
	assert.Contains(t, report.Message, "(y, 0.9): string")
}

func TestQuantiles_UnsortedIndex(t *testing.T) {
	t.Parallel()

	tab := table.MustNew(table.IntIndex{2, 0, 1},
		table.NewColumn(table.QuantileKey("y", 0.1), 1.0, 2.0, 3.0))

	report := Quantiles{}.ValidateWithReport(tab, MetadataNone(), "pred")

	require.False(t, report.Valid)
	assert.Contains(t, report.Message, "must be sorted monotonically increasing")
	assert.Contains(t, report.Message, "[2 0 1]")
}

func TestQuantiles_KeyShape(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		tab  *table.Table
	}{
		{
			name: "wrong arity",
			tab: table.MustNew(table.IntIndex{0},
				table.NewColumn(table.NewKey("y"), 1.0)),
		},
		{
			name: "non-numeric alpha level",
			tab: table.MustNew(table.IntIndex{0},
				table.NewColumn(table.NewKey("y", "0.1"), 1.0)),
		},
		{
			name: "alpha above one",
			tab: table.MustNew(table.IntIndex{0},
				table.NewColumn(table.QuantileKey("y", 0.1), 1.0),
				table.NewColumn(table.QuantileKey("y", 1.5), 2.0)),
		},
		{
			name: "negative alpha",
			tab: table.MustNew(table.IntIndex{0},
				table.NewColumn(table.QuantileKey("y", -0.1), 1.0)),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			report := Quantiles{}.ValidateWithReport(tc.tab, MetadataAll(), "pred")

			require.False(t, report.Valid)
			assert.Contains(t, report.Message, "two levels")
			assert.Contains(t, report.Message, "between 0 and 1")
			assert.Nil(t, report.Metadata)
		})
	}
}

func TestQuantiles_BoundaryAlphasAreValid(t *testing.T) {
	t.Parallel()

	tab := table.MustNew(table.IntIndex{0},
		table.NewColumn(table.QuantileKey("y", 0.0), 1.0),
		table.NewColumn(table.QuantileKey("y", 1.0), 2.0))

	assert.True(t, Quantiles{}.Validate(tab))
}

func TestQuantiles_Univariate(t *testing.T) {
	t.Parallel()

	t.Run("single variable", func(t *testing.T) {
		t.Parallel()

		report := Quantiles{}.ValidateWithReport(
			quantileTable(t), MetadataFields(FieldIsUnivariate), "")

		require.True(t, report.Valid)
		assert.Equal(t, map[string]bool{FieldIsUnivariate: true}, report.Metadata)
	})

	t.Run("two variables", func(t *testing.T) {
		t.Parallel()

		tab := table.MustNew(table.IntIndex{0},
			table.NewColumn(table.QuantileKey("y", 0.5), 1.0),
			table.NewColumn(table.QuantileKey("z", 0.5), 2.0))

		report := Quantiles{}.ValidateWithReport(tab, MetadataFields(FieldIsUnivariate), "")

		require.True(t, report.Valid)
		assert.Equal(t, map[string]bool{FieldIsUnivariate: false}, report.Metadata)
	})
}

func TestQuantiles_HasNaNs(t *testing.T) {
	t.Parallel()

	tab := table.MustNew(table.IntIndex{0, 1},
		table.NewColumn(table.QuantileKey("y", 0.5), 1.0, math.NaN()))

	report := Quantiles{}.ValidateWithReport(tab, MetadataFields(FieldHasNaNs), "")

	require.True(t, report.Valid)
	assert.Equal(t, map[string]bool{FieldHasNaNs: true}, report.Metadata)
}

func TestQuantiles_IsEmpty(t *testing.T) {
	t.Parallel()

	t.Run("zero rows", func(t *testing.T) {
		t.Parallel()

		tab := table.MustNew(table.IntIndex{},
			table.NewColumn(table.QuantileKey("y", 0.5)))

		report := Quantiles{}.ValidateWithReport(tab, MetadataFields(FieldIsEmpty), "")

		require.True(t, report.Valid)
		assert.Equal(t, map[string]bool{FieldIsEmpty: true}, report.Metadata)
	})

	t.Run("zero columns", func(t *testing.T) {
		t.Parallel()

		tab := table.MustNew(table.IntIndex{0, 1})

		report := Quantiles{}.ValidateWithReport(tab, MetadataFields(FieldIsEmpty), "")

		require.True(t, report.Valid)
		assert.Equal(t, map[string]bool{FieldIsEmpty: true}, report.Metadata)
	})

	t.Run("populated table", func(t *testing.T) {
		t.Parallel()

		report := Quantiles{}.ValidateWithReport(
			quantileTable(t), MetadataFields(FieldIsEmpty), "")

		require.True(t, report.Valid)
		assert.Equal(t, map[string]bool{FieldIsEmpty: false}, report.Metadata)
	})
}

func TestQuantiles_MetadataFiltering(t *testing.T) {
	t.Parallel()

	t.Run("subset returns exactly the requested keys", func(t *testing.T) {
		t.Parallel()

		report := Quantiles{}.ValidateWithReport(
			quantileTable(t), MetadataFields(FieldHasNaNs), "")

		require.True(t, report.Valid)
		assert.Equal(t, map[string]bool{FieldHasNaNs: false}, report.Metadata)
	})

	t.Run("none returns nil metadata", func(t *testing.T) {
		t.Parallel()

		report := Quantiles{}.ValidateWithReport(quantileTable(t), MetadataNone(), "")

		require.True(t, report.Valid)
		assert.Nil(t, report.Metadata)
	})

	t.Run("unknown field names are ignored", func(t *testing.T) {
		t.Parallel()

		report := Quantiles{}.ValidateWithReport(
			quantileTable(t), MetadataFields("no_such_field"), "")

		require.True(t, report.Valid)
		assert.Nil(t, report.Metadata)
	})
}

func TestQuantiles_Idempotent(t *testing.T) {
	t.Parallel()

	tab := quantileTable(t)
	req := MetadataAll()

	first := Quantiles{}.ValidateWithReport(tab, req, "pred")
	second := Quantiles{}.ValidateWithReport(tab, req, "pred")

	assert.Equal(t, first, second)
}

func TestQuantiles_DefaultName(t *testing.T) {
	t.Parallel()

	report := Quantiles{}.ValidateWithReport(12, MetadataNone(), "")

	assert.Equal(t, "obj should be a table", report.Message)
}

func TestQuantiles_Validate(t *testing.T) {
	t.Parallel()

	assert.True(t, Quantiles{}.Validate(quantileTable(t)))
	assert.False(t, Quantiles{}.Validate("nope"))
}

func BenchmarkQuantiles_ValidateWithReport(b *testing.B) {
	tab := table.MustNew(table.IntIndex{0, 1, 2},
		table.NewColumn(table.QuantileKey("y", 0.1), 1.0, 2.0, 3.0),
		table.NewColumn(table.QuantileKey("y", 0.9), 4.0, 5.0, 6.0))
	req := MetadataAll()

	b.ResetTimer()

	for b.Loop() {
		_ = Quantiles{}.ValidateWithReport(tab, req, "pred")
	}
}
