package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/wilran/internal/catalog"
	"github.com/KirkDiggler/wilran/internal/entities"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

const (
	speciesJSON = `{"items": [{
		"name": "Charmander",
		"type": ["fire"],
		"size": "small",
		"ac": 13,
		"hp": 12,
		"hitDice": "d8",
		"minLevel": 1,
		"evolution": {"maxStage": 3},
		"attributes": {"STR": 12, "DEX": 14, "CON": 10, "INT": 10, "WIS": 11, "CHA": 9},
		"skills": ["perception"],
		"savingThrows": ["dex"],
		"moves": {"start": ["ember", "scratch"], "level6": ["flame-burst"]},
		"abilities": [{"id": "blaze"}, {"id": "solar-power", "hidden": true}],
		"sr": 1,
		"gender": "1:7",
		"media": {"main": "https://img/charmander.png", "mainShiny": "https://img/charmander-shiny.png"},
		"speed": [{"type": "walk", "value": 30}]
	}]}`

	movesJSON = `{"moves": [
		{"id": "ember", "type": "fire", "power": ["str", "dex"], "pp": 10,
		 "description": ["Make a ranged attack. On a hit, the target takes 1d6 + MOVE fire damage."]},
		{"id": "thunder-punch", "name": "ThunderPunch", "type": "electric", "power": "str", "pp": 5, "description": []},
		{"id": "growl", "type": "normal", "power": "none", "pp": 20, "description": ["Lower attack."]}
	]}`

	abilitiesJSON = `{"items": [{"id": "blaze", "name": "Blaze", "description": "Fire moves hit harder."}]}`

	heldItemsJSON = `{"items": ["Oran Berry", {"name": "Leftovers"}, ""]}`

	typeChartJSON = `{
		"fire":  {"fire": 0.5, "water": 2, "grass": 0.5},
		"water": {"fire": 0.5, "water": 0.5, "grass": 2},
		"grass": {"fire": 2, "water": 0.5, "grass": 0.5}
	}`

	areasJSON = `{
		"Viridian Forest": {"name": "Viridian Forest", "pokemon": [{"name": "Charmander", "min_level": 2, "max_level": 5}]},
		"Route 1": {"name": "Route 1", "pokemon": []}
	}`
)

func writeCatalog(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	return dir
}

func fullCatalog() map[string]string {
	return map[string]string{
		catalog.SpeciesFile:   speciesJSON,
		catalog.MovesFile:     movesJSON,
		catalog.AbilitiesFile: abilitiesJSON,
		catalog.HeldItemsFile: heldItemsJSON,
		catalog.TypeChartFile: typeChartJSON,
		catalog.AreasFile:     areasJSON,
	}
}

func TestLoad(t *testing.T) {
	c, err := catalog.Load(writeCatalog(t, fullCatalog()))
	require.NoError(t, err)

	species, err := c.Species("CHARMANDER")
	require.NoError(t, err)
	assert.Equal(t, 14, species.Attributes[entities.AttributeDexterity])
	assert.Equal(t, 3, species.MaxStage())
	assert.Equal(t, []string{"ember", "scratch", "flame-burst"}, species.Moves.Available(6))

	ember, err := c.Move("ember")
	require.NoError(t, err)
	assert.Equal(t, "Ember", ember.Name)
	assert.Equal(t, entities.PowerAbilities{entities.AttributeStrength, entities.AttributeDexterity}, ember.Power)

	punch, err := c.Move("thunder-punch")
	require.NoError(t, err)
	assert.Equal(t, "ThunderPunch", punch.Name, "explicit names are kept")

	growl, err := c.Move("growl")
	require.NoError(t, err)
	assert.Empty(t, growl.Power)

	ability, err := c.Ability("blaze")
	require.NoError(t, err)
	assert.Equal(t, "Blaze", ability.Name)

	assert.Equal(t, []string{"Oran Berry", "Leftovers"}, c.HeldItems())
	assert.Equal(t, []string{"fire", "grass", "water"}, c.TypeChart().Types())

	area, err := c.Area("viridian forest")
	require.NoError(t, err)
	require.Len(t, area.Species, 1)
	assert.Equal(t, 5, area.Species[0].MaxLevel)
	assert.Equal(t, []string{"Route 1", "Viridian Forest"}, c.AreaNames())
}

func TestLoad_NotFoundLookups(t *testing.T) {
	c, err := catalog.Load(writeCatalog(t, fullCatalog()))
	require.NoError(t, err)

	_, err = c.Species("missingno")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = c.Move("splash")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = c.Ability("levitate")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = c.Area("cerulean cave")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestLoad_OptionalFiles(t *testing.T) {
	files := fullCatalog()
	delete(files, catalog.HeldItemsFile)
	delete(files, catalog.AreasFile)

	c, err := catalog.Load(writeCatalog(t, files))
	require.NoError(t, err)
	assert.Empty(t, c.HeldItems())
	assert.Empty(t, c.AreaNames())
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name   string
		modify func(map[string]string)
	}{
		{
			name:   "missing moves",
			modify: func(f map[string]string) { delete(f, catalog.MovesFile) },
		},
		{
			name:   "broken species json",
			modify: func(f map[string]string) { f[catalog.SpeciesFile] = `{"items": [` },
		},
		{
			name:   "non-square type chart",
			modify: func(f map[string]string) { f[catalog.TypeChartFile] = `{"fire": {"fire": 1, "water": 2}}` },
		},
		{
			name:   "unknown power ability",
			modify: func(f map[string]string) { f[catalog.MovesFile] = `{"moves": [{"id": "x", "power": ["luck"]}]}` },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := fullCatalog()
			tt.modify(files)
			_, err := catalog.Load(writeCatalog(t, files))
			assert.Error(t, err)
		})
	}
}

func TestMoveName(t *testing.T) {
	assert.Equal(t, "Thunder Punch", catalog.MoveName("thunder-punch"))
	assert.Equal(t, "Ember", catalog.MoveName("ember"))
}

func TestMoveName_Concurrent(t *testing.T) {
	keys := []string{"thunder-punch", "flame-burst", "self-destruct", "water-gun"}
	want := []string{"Thunder Punch", "Flame Burst", "Self Destruct", "Water Gun"}

	var g errgroup.Group
	got := make([]string, 200)
	for i := range got {
		g.Go(func() error {
			got[i] = catalog.MoveName(keys[i%len(keys)])
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, name := range got {
		assert.Equal(t, want[i%len(want)], name)
	}
}
