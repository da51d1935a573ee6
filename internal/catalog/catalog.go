// Package catalog loads the read-only reference data: species, moves,
// abilities, held items, the type chart and areas.
package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/wilran/internal/domain/rulebook/typechart"
	"github.com/KirkDiggler/wilran/internal/entities"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

// File names expected in the data directory
const (
	SpeciesFile   = "pokemon.json"
	MovesFile     = "moves.json"
	AbilitiesFile = "abilities.json"
	HeldItemsFile = "helditems.json"
	TypeChartFile = "typechart.json"
	AreasFile     = "areas.json"
)

// Catalog is the loaded reference data. It is immutable after Load.
type Catalog struct {
	species   map[string]*entities.Species
	moves     map[string]*entities.Move
	abilities map[string]*entities.Ability
	heldItems []string
	chart     *typechart.Chart
	areas     map[string]*entities.Area
}

type speciesFile struct {
	Items []*entities.Species `json:"items"`
}

type movesFile struct {
	Moves []*entities.Move `json:"moves"`
}

type abilitiesFile struct {
	Items []*entities.Ability `json:"items"`
}

type heldItemsFile struct {
	Items []heldItem `json:"items"`
}

// heldItem accepts either a bare string or an object with a name
type heldItem string

func (h *heldItem) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*h = heldItem(name)
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("held item must be a string or an object with a name: %w", err)
	}
	*h = heldItem(obj.Name)
	return nil
}

// Load reads every catalog file in dir in parallel. Held items and areas
// are optional; every other file must exist and parse.
func Load(dir string) (*Catalog, error) {
	var (
		sf    speciesFile
		mf    movesFile
		af    abilitiesFile
		hf    heldItemsFile
		chart typechart.Matrix
		areas map[string]*entities.Area
	)

	g := new(errgroup.Group)
	g.Go(func() error { return readJSON(dir, SpeciesFile, &sf, true) })
	g.Go(func() error { return readJSON(dir, MovesFile, &mf, true) })
	g.Go(func() error { return readJSON(dir, AbilitiesFile, &af, true) })
	g.Go(func() error { return readJSON(dir, HeldItemsFile, &hf, false) })
	g.Go(func() error { return readJSON(dir, TypeChartFile, &chart, true) })
	g.Go(func() error { return readJSON(dir, AreasFile, &areas, false) })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c, err := build(sf.Items, mf.Moves, af.Items, hf.Items, chart, areas)
	if err != nil {
		return nil, err
	}

	log.Printf("Catalog: loaded %d species, %d moves, %d abilities, %d held items, %d types, %d areas from %s",
		len(c.species), len(c.moves), len(c.abilities), len(c.heldItems), len(c.chart.Types()), len(c.areas), dir)
	return c, nil
}

// New builds a catalog from already-decoded data
func New(species []*entities.Species, moves []*entities.Move, abilities []*entities.Ability,
	heldItems []string, chart typechart.Matrix, areas []*entities.Area) (*Catalog, error) {
	items := make([]heldItem, len(heldItems))
	for i, h := range heldItems {
		items[i] = heldItem(h)
	}

	byName := make(map[string]*entities.Area, len(areas))
	for _, a := range areas {
		byName[a.Name] = a
	}

	return build(species, moves, abilities, items, chart, byName)
}

func build(species []*entities.Species, moves []*entities.Move, abilities []*entities.Ability,
	heldItems []heldItem, matrix typechart.Matrix, areas map[string]*entities.Area) (*Catalog, error) {
	chart, err := typechart.New(matrix)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to build type chart")
	}

	c := &Catalog{
		species:   make(map[string]*entities.Species, len(species)),
		moves:     make(map[string]*entities.Move, len(moves)),
		abilities: make(map[string]*entities.Ability, len(abilities)),
		chart:     chart,
		areas:     make(map[string]*entities.Area, len(areas)),
	}

	for _, s := range species {
		if s == nil || s.Name == "" {
			continue
		}
		c.species[strings.ToLower(s.Name)] = s
	}

	for _, m := range moves {
		if m == nil || m.ID == "" {
			continue
		}
		if m.Name == "" {
			m.Name = MoveName(m.ID)
		}
		c.moves[m.ID] = m
	}

	for _, a := range abilities {
		if a == nil || a.ID == "" {
			continue
		}
		c.abilities[a.ID] = a
	}

	for _, h := range heldItems {
		if name := strings.TrimSpace(string(h)); name != "" {
			c.heldItems = append(c.heldItems, name)
		}
	}

	for key, a := range areas {
		if a == nil {
			continue
		}
		if a.Name == "" {
			a.Name = key
		}
		c.areas[strings.ToLower(key)] = a
	}

	return c, nil
}

func readJSON(dir, name string, dst any, required bool) error {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			log.Printf("Catalog: optional file %s not found, skipping", path)
			return nil
		}
		return dnderr.Wrapf(err, "failed to read %s", path)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return dnderr.Wrapf(err, "failed to parse %s", path)
	}
	return nil
}

// MoveName turns a move key into its display name: "thunder-punch" becomes
// "Thunder Punch". Safe for concurrent use; a Caser keeps state, so every
// call builds its own.
func MoveName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "-", " "))
}

// Species looks a template up by name, ignoring case
func (c *Catalog) Species(name string) (*entities.Species, error) {
	s, ok := c.species[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, dnderr.NotFoundf("species %q not found", name).WithMeta("species", name)
	}
	return s, nil
}

// Move looks a move up by key
func (c *Catalog) Move(key string) (*entities.Move, error) {
	m, ok := c.moves[key]
	if !ok {
		return nil, dnderr.NotFoundf("move %q not found", key).WithMeta("move", key)
	}
	return m, nil
}

// Ability looks an ability up by id
func (c *Catalog) Ability(id string) (*entities.Ability, error) {
	a, ok := c.abilities[id]
	if !ok {
		return nil, dnderr.NotFoundf("ability %q not found", id).WithMeta("ability", id)
	}
	return a, nil
}

// HeldItems returns the held item names in catalog order
func (c *Catalog) HeldItems() []string {
	out := make([]string, len(c.heldItems))
	copy(out, c.heldItems)
	return out
}

// TypeChart returns the loaded type chart
func (c *Catalog) TypeChart() *typechart.Chart {
	return c.chart
}

// Area looks an area up by name, ignoring case
func (c *Catalog) Area(name string) (*entities.Area, error) {
	a, ok := c.areas[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, dnderr.NotFoundf("area %q not found", name).WithMeta("area", name)
	}
	return a, nil
}

// AreaNames returns every area name, sorted
func (c *Catalog) AreaNames() []string {
	names := make([]string, 0, len(c.areas))
	for _, a := range c.areas {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return names
}
