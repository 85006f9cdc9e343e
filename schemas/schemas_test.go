package schemas_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qimen/chart"
	"github.com/katalvlaran/qimen/schemas"
)

func TestChart_Compiles(t *testing.T) {
	s, err := schemas.Chart()
	require.NoError(t, err)
	require.NotNil(t, s)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(schemas.ChartSchema(), &raw))
	assert.Equal(t, "Qimen hour chart", raw["title"])
}

// TestValidate_GeneratedCharts sweeps a year in 7-hour steps so every hour
// branch, term and pattern shows up.
func TestValidate_GeneratedCharts(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 366*24; h += 7 {
		c := chart.Generate(start.Add(time.Duration(h)*time.Hour), "1990")
		require.NoError(t, schemas.Validate(c), "at %s", c.At)
	}
}

func encoded(t *testing.T) map[string]interface{} {
	t.Helper()
	c := chart.Generate(time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC), "1990")
	b, err := json.Marshal(c)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &doc))

	return doc
}

func palace(doc map[string]interface{}, i int) map[string]interface{} {
	return doc["palaces"].([]interface{})[i].(map[string]interface{})
}

func TestValidateChart_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(doc map[string]interface{})
	}{
		{"MissingPillars", func(d map[string]interface{}) { delete(d, "pillars") }},
		{"UnknownTerm", func(d map[string]interface{}) { d["solarTerm"] = "春节" }},
		{"PatternOutOfRange", func(d map[string]interface{}) {
			d["ju"].(map[string]interface{})["number"] = float64(10)
		}},
		{"EightPalaces", func(d map[string]interface{}) {
			d["palaces"] = d["palaces"].([]interface{})[:8]
		}},
		{"CenterWithStar", func(d map[string]interface{}) { palace(d, 4)["star"] = "天禽" }},
		{"CenterWithHeaven", func(d map[string]interface{}) {
			palace(d, 4)["heaven"] = map[string]interface{}{"host": "戊"}
		}},
		{"OuterWithoutDoor", func(d map[string]interface{}) { palace(d, 0)["door"] = "" }},
		{"JiaOnPlate", func(d map[string]interface{}) {
			palace(d, 0)["earth"] = map[string]interface{}{"host": "甲"}
		}},
		{"ExtraField", func(d map[string]interface{}) { d["comment"] = "x" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := encoded(t)
			require.NoError(t, schemas.ValidateChart(doc))
			tc.mutate(doc)
			assert.ErrorIs(t, schemas.ValidateChart(doc), schemas.ErrInvalidChart)
		})
	}
}

func TestValidateJSON_Malformed(t *testing.T) {
	assert.ErrorIs(t, schemas.ValidateJSON([]byte(`{"at":`)), schemas.ErrInvalidChart)
	assert.ErrorIs(t, schemas.ValidateJSON([]byte(`[]`)), schemas.ErrInvalidChart)
}
