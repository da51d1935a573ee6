package typechart_test

import (
	"testing"

	"github.com/KirkDiggler/wilran/internal/domain/rulebook/typechart"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMatrix is a four-type slice of the real chart, defense -> attack
func testMatrix() typechart.Matrix {
	return typechart.Matrix{
		"fire": {
			"fire": 0.5, "water": 2, "grass": 0.5, "ground": 2, "electric": 1,
		},
		"water": {
			"fire": 0.5, "water": 0.5, "grass": 2, "ground": 1, "electric": 2,
		},
		"grass": {
			"fire": 2, "water": 0.5, "grass": 0.5, "ground": 0.5, "electric": 0.5,
		},
		"ground": {
			"fire": 1, "water": 2, "grass": 2, "ground": 1, "electric": 0,
		},
		"electric": {
			"fire": 1, "water": 1, "grass": 1, "ground": 2, "electric": 0.5,
		},
	}
}

func newChart(t *testing.T) *typechart.Chart {
	t.Helper()
	chart, err := typechart.New(testMatrix())
	require.NoError(t, err)
	return chart
}

func TestNew_RejectsNonSquareMatrix(t *testing.T) {
	m := testMatrix()
	delete(m["fire"], "electric")

	_, err := typechart.New(m)
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestNew_RejectsEmptyMatrix(t *testing.T) {
	_, err := typechart.New(typechart.Matrix{})
	assert.Error(t, err)
}

func TestDefensiveMultipliers_DualTypeIsProduct(t *testing.T) {
	chart := newChart(t)
	m := testMatrix()

	for _, t1 := range chart.Types() {
		for _, t2 := range chart.Types() {
			mults, err := chart.DefensiveMultipliers([]string{t1, t2})
			require.NoError(t, err)
			for _, attack := range chart.Types() {
				assert.Equal(t, m[t1][attack]*m[t2][attack], mults[attack], "%s/%s against %s", t1, t2, attack)
			}
		}
	}
}

func TestDefensiveMultipliers_InvalidInput(t *testing.T) {
	chart := newChart(t)

	tests := []struct {
		name  string
		types []string
	}{
		{name: "no types", types: nil},
		{name: "three types", types: []string{"fire", "water", "grass"}},
		{name: "unknown label", types: []string{"fire", "sound"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chart.DefensiveMultipliers(tt.types)
			require.Error(t, err)
			assert.True(t, dnderr.IsInvalidType(err))
		})
	}
}

func TestProfile_WaterGround(t *testing.T) {
	chart := newChart(t)

	p, err := chart.Profile([]string{"Water", "ground"})
	require.NoError(t, err)

	assert.Equal(t, []string{"grass"}, p.Vulnerabilities)
	assert.Equal(t, []string{"fire"}, p.Resistances)
	assert.Equal(t, []string{"electric"}, p.Immunities)
	assert.Equal(t, 4.0, p.Multipliers["grass"])
	assert.Equal(t, 1.0, p.Multipliers["water"])
}

func TestImmunities_NoneSentinel(t *testing.T) {
	chart := newChart(t)

	imm, err := chart.Immunities([]string{"fire"})
	require.NoError(t, err)
	assert.Equal(t, []string{typechart.ImmunitiesNone}, imm)

	vuln, err := chart.Vulnerabilities([]string{"fire"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ground", "water"}, vuln)

	res, err := chart.Resistances([]string{"fire"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fire", "grass"}, res)
}
