package gamedata

import (
	"errors"

	"github.com/samdwyer/deckfall/internal/rng"
)

// CardRegistry holds loaded card definitions and provides lookup utilities.
type CardRegistry struct {
	cards        map[string]*CardDef
	all          []CardDef
	startingDeck []string
}

// NewCardRegistry creates a registry from a loaded cards file.
func NewCardRegistry(file CardsFile) *CardRegistry {
	registry := &CardRegistry{
		cards:        make(map[string]*CardDef),
		all:          file.Cards,
		startingDeck: file.StartingDeck,
	}
	for i := range file.Cards {
		registry.cards[file.Cards[i].ID] = &file.Cards[i]
	}
	return registry
}

// LoadCardRegistry loads and creates a registry from the embedded cards.json.
func LoadCardRegistry() (*CardRegistry, error) {
	file, err := LoadCards()
	if err != nil {
		return nil, err
	}
	if len(file.Cards) == 0 {
		return nil, errors.New("no cards loaded from cards.json")
	}
	return NewCardRegistry(file), nil
}

// MustLoadCardRegistry loads a registry, panicking on error.
func MustLoadCardRegistry() *CardRegistry {
	registry, err := LoadCardRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the card definition with the given ID, or nil if not found.
func (r *CardRegistry) GetByID(id string) *CardDef {
	return r.cards[id]
}

// Random returns a uniformly random card definition.
func (r *CardRegistry) Random(src rng.Source) *CardDef {
	if len(r.all) == 0 {
		return nil
	}
	return &r.all[src.Intn(len(r.all))]
}

// StartingDeck returns the template IDs composing the opening deck.
func (r *CardRegistry) StartingDeck() []string {
	return r.startingDeck
}

// All returns all card definitions.
func (r *CardRegistry) All() []CardDef {
	return r.all
}

// Count returns the number of card templates in the registry.
func (r *CardRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// EnemyRegistry
// =============================================================================

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies []EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	return &EnemyRegistry{enemies: enemies}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Random selects a uniformly random enemy definition.
func (r *EnemyRegistry) Random(src rng.Source) *EnemyDef {
	if len(r.enemies) == 0 {
		return nil
	}
	return &r.enemies[src.Intn(len(r.enemies))]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}
