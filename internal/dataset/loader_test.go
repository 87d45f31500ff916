package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfires-dashboard/internal/domain"
)

const sampleCSV = `Region,Year,Month_name,Estimated_fire_area,Count
NSW,2020,January,10.5,120
NSW,2020,February,3.25,40
VIC,2019,December,8,75
`

func TestParse(t *testing.T) {
	t.Run("parses well-formed rows", func(t *testing.T) {
		ds, err := Parse(strings.NewReader(sampleCSV))
		require.NoError(t, err)
		require.Len(t, ds, 3)

		assert.Equal(t, domain.RegionNSW, ds[0].Region)
		assert.Equal(t, 2020, ds[0].Year)
		assert.Equal(t, domain.Month("January"), ds[0].Month)
		assert.Equal(t, 10.5, ds[0].EstimatedFireArea)
		assert.Equal(t, 120, ds[0].Count)

		assert.Equal(t, domain.RegionVIC, ds[2].Region)
		assert.Equal(t, domain.Month("December"), ds[2].Month)
	})

	t.Run("handles reordered and extra columns", func(t *testing.T) {
		csv := "Month_name,Count,Region,Replaced,Year,Estimated_fire_area\n" +
			"march,7,qld,ignored,2010,1.5\n"
		ds, err := Parse(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, ds, 1)
		assert.Equal(t, domain.RegionQLD, ds[0].Region)
		assert.Equal(t, domain.Month("March"), ds[0].Month)
		assert.Equal(t, 7, ds[0].Count)
	})

	t.Run("normalizes month casing", func(t *testing.T) {
		csv := "Region,Year,Month_name,Estimated_fire_area,Count\nWA,2015,JULY,2.0,9\n"
		ds, err := Parse(strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, domain.Month("July"), ds[0].Month)
	})

	t.Run("rejects unknown region", func(t *testing.T) {
		csv := "Region,Year,Month_name,Estimated_fire_area,Count\nACT,2015,July,2.0,9\n"
		_, err := Parse(strings.NewReader(csv))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	})

	t.Run("rejects year outside the dataset range", func(t *testing.T) {
		csv := "Region,Year,Month_name,Estimated_fire_area,Count\nNSW,1999,July,2.0,9\n"
		_, err := Parse(strings.NewReader(csv))
		assert.Error(t, err)
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		for _, row := range []string{
			"NSW,2015,July,abc,9",
			"NSW,2015,July,2.0,x",
			"NSW,2015,July,-1.0,9",
			"NSW,2015,July,2.0,-3",
		} {
			csv := "Region,Year,Month_name,Estimated_fire_area,Count\n" + row + "\n"
			_, err := Parse(strings.NewReader(csv))
			assert.Error(t, err, "row %q", row)
		}
	})

	t.Run("rejects missing columns", func(t *testing.T) {
		csv := "Region,Year,Month_name,Estimated_fire_area\nNSW,2015,July,2.0\n"
		_, err := Parse(strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing column")
	})

	t.Run("empty file yields empty dataset", func(t *testing.T) {
		ds, err := Parse(strings.NewReader("Region,Year,Month_name,Estimated_fire_area,Count\n"))
		require.NoError(t, err)
		assert.Empty(t, ds)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.csv")
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	ds, err := Load("testdata/sample.csv")
	require.NoError(t, err)
	assert.NotEmpty(t, ds)
}
