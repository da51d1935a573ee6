package entities

// Area is a named, weighted list of species that can appear there. Areas are
// produced by the separate area-building tool and only read here.
type Area struct {
	Name    string      `json:"name"`
	Species []AreaEntry `json:"pokemon"`
}

// AreaEntry is one species slot with its level range
type AreaEntry struct {
	Name     string `json:"name"`
	MinLevel int    `json:"min_level"`
	MaxLevel int    `json:"max_level"`
}

// Ability is an abilities catalog entry
type Ability struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
