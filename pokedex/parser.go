package pokedex

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mwillems/godex/pokeapi"
)

// ErrUnexpectedShape marks a document that decoded fine but is missing
// something a projection needs.
var ErrUnexpectedShape = errors.New("unexpected document shape")

// The versions whose game index gets reported. First entry in document order
// matching any of these wins.
var gameVersionNames = []string{"diamond", "black"}

// MoveSummary is the flattened, display-ready form of one learnable move.
type MoveSummary struct {
	Name        string
	Description string
	// Null means the move has no accuracy stat
	Accuracy   *int
	DamageType string
}

// Parser projects views out of a single fetched pokemon document. It keeps a
// reference to the document, never a copy, and derives everything fresh on
// every call.
type Parser struct {
	client *pokeapi.Client
	data   *pokeapi.Pokemon
}

func NewParser(client *pokeapi.Client, data *pokeapi.Pokemon) *Parser {
	return &Parser{
		client: client,
		data:   data,
	}
}

// Types returns the pokemon's type names in document order, title-cased.
func (p *Parser) Types() []string {
	titleCaser := cases.Title(language.English)

	return lo.Map(p.data.Types, func(slot pokeapi.TypeSlot, _ int) string {
		return titleCaser.String(slot.Type.Name)
	})
}

// Stats returns base stats keyed by stat name ("hp", "attack", ...). A
// duplicated stat name keeps the last value seen.
func (p *Parser) Stats() map[string]int {
	stats := make(map[string]int, len(p.data.Stats))
	for _, entry := range p.data.Stats {
		stats[entry.Stat.Name] = entry.BaseStat
	}

	return stats
}

// Abilities returns the pokemon's ability names in document order, title-cased.
func (p *Parser) Abilities() []string {
	titleCaser := cases.Title(language.English)

	return lo.Map(p.data.Abilities, func(entry pokeapi.AbilityEntry, _ int) string {
		return titleCaser.String(entry.Ability.Name)
	})
}

// GameVersion returns the game index of the first entry matching one of
// gameVersionNames. ok is false when nothing matches, which is a normal
// result rather than an error.
func (p *Parser) GameVersion() (index int, ok bool) {
	for _, entry := range p.data.GameIndices {
		if lo.Contains(gameVersionNames, entry.Version.Name) {
			return entry.GameIndex, true
		}
	}

	return 0, false
}

// Moves builds a summary of every learnable move, in document order. Each
// move costs one extra round-trip for its detail document, on every call, so
// this is by far the most expensive projection here.
func (p *Parser) Moves() ([]MoveSummary, error) {
	moves := make([]MoveSummary, 0, len(p.data.Moves))

	for _, slot := range p.data.Moves {
		detail, err := p.client.Move(slot.Move.Url)
		if err != nil {
			return nil, err
		}

		if len(detail.FlavorTextEntries) == 0 {
			return nil, fmt.Errorf("move %q has no flavor text entries: %w", slot.Move.Name, ErrUnexpectedShape)
		}

		flavorText := strings.ReplaceAll(detail.FlavorTextEntries[0].FlavorText, "\n", " ")

		moves = append(moves, MoveSummary{
			Name:        slot.Move.Name,
			Description: capitalize(flavorText),
			Accuracy:    detail.Accuracy,
			DamageType:  detail.DamageClass.Name,
		})
	}

	return moves, nil
}

// capitalize upper-cases the first rune and lower-cases everything after it
func capitalize(s string) string {
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
