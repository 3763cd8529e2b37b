package gamedata

// CardType classifies what a card fundamentally does.
type CardType string

const (
	// CardAttack deals damage to the current enemy.
	CardAttack CardType = "attack"
	// CardSkill provides a non-damaging effect (block, draw, ...).
	CardSkill CardType = "skill"
)

// CardDef defines a card template loaded from JSON. Templates are immutable;
// runtime card instances are value-copied from them.
type CardDef struct {
	ID           string   `json:"id"`           // Unique identifier (e.g., "strike")
	Name         string   `json:"name"`         // Display name (e.g., "Strike")
	Type         CardType `json:"type"`         // attack or skill
	Cost         int      `json:"cost"`         // Energy cost (>= 0)
	Damage       int      `json:"damage"`       // Damage dealt to the enemy (0 = none)
	Block        int      `json:"block"`        // Block granted to the player (0 = none)
	Vulnerable   int      `json:"vulnerable"`   // Vulnerable turns applied to the enemy (0 = none)
	Draw         int      `json:"draw"`         // Cards drawn on play (0 = none)
	SelfCopy     bool     `json:"selfCopy"`     // Adds a fresh copy of itself to the discard pile
	AreaOfEffect bool     `json:"areaOfEffect"` // Declared for multi-enemy combat; unused by the single-enemy engine
	Text         string   `json:"text"`         // Display text (e.g., "Deal 6 damage.")
	Color        string   `json:"color"`        // Hex color code (e.g., "#CC4444")
}

// CardsFile represents the structure of cards.json.
type CardsFile struct {
	StartingDeck []string  `json:"startingDeck"` // Template IDs composing the opening deck
	Cards        []CardDef `json:"cards"`
}

// LoadCards loads card definitions from the embedded cards.json file.
func LoadCards() (CardsFile, error) {
	return Load[CardsFile]("cards.json")
}

// MustLoadCards loads card definitions, panicking on error.
func MustLoadCards() CardsFile {
	file, err := LoadCards()
	if err != nil {
		panic(err)
	}
	return file
}
