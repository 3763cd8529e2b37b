package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy template loaded from JSON.
type EnemyDef struct {
	ID         string   `json:"id"`         // Unique identifier (e.g., "cultist")
	Name       string   `json:"name"`       // Display name (e.g., "Cultist")
	Glyph      string   `json:"glyph"`      // Single character for rendering (e.g., "c")
	Color      string   `json:"color"`      // Hex color code (e.g., "#8844CC")
	HP         int      `json:"hp"`         // Starting and maximum hit points
	Damage     int      `json:"damage"`     // Base attack damage
	BuffAmount int      `json:"buffAmount"` // Permanent damage gained per buff intent (0 = none)
	Intents    []string `json:"intents"`    // Ordered intent set, subset of {attack, defend, buff}
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// DisplayColor returns the enemy's color as a tcell.Color.
func (e *EnemyDef) DisplayColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// MustLoadEnemies loads enemy definitions, panicking on error.
func MustLoadEnemies() []EnemyDef {
	enemies, err := LoadEnemies()
	if err != nil {
		panic(err)
	}
	return enemies
}
