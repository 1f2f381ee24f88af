package pokedex

import (
	"github.com/mwillems/godex/pokeapi"
)

// Entry ties a fetched pokemon document to its parser. Building one costs a
// single network call; every accessor after that re-derives its view from the
// same in-memory document. Nothing is memoized, so Moves re-fetches its
// detail documents on every call.
type Entry struct {
	Name   string
	parser *Parser
}

// New eagerly fetches the document for name and returns an entry bound to it.
func New(client *pokeapi.Client, name string) (*Entry, error) {
	data, err := client.Pokemon(name)
	if err != nil {
		return nil, err
	}

	return &Entry{
		Name:   name,
		parser: NewParser(client, data),
	}, nil
}

func (e *Entry) Moves() ([]MoveSummary, error) {
	return e.parser.Moves()
}

func (e *Entry) Types() []string {
	return e.parser.Types()
}

func (e *Entry) Stats() map[string]int {
	return e.parser.Stats()
}

func (e *Entry) Abilities() []string {
	return e.parser.Abilities()
}

func (e *Entry) GameVersion() (int, bool) {
	return e.parser.GameVersion()
}
