package pokeapi

type NamedApiResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

// Pokemon is the raw per-name document returned by the api. Only the parts
// this library projects are declared here; everything else in the response
// gets dropped at decode time.
type Pokemon struct {
	Id          int              `json:"id"`
	Name        string           `json:"name"`
	Types       []TypeSlot       `json:"types"`
	Stats       []StatEntry      `json:"stats"`
	Abilities   []AbilityEntry   `json:"abilities"`
	GameIndices []GameIndexEntry `json:"game_indices"`
	Moves       []MoveSlot       `json:"moves"`
}

type TypeSlot struct {
	Slot int              `json:"slot"`
	Type NamedApiResource `json:"type"`
}

type StatEntry struct {
	BaseStat int              `json:"base_stat"`
	Effort   int              `json:"effort"`
	Stat     NamedApiResource `json:"stat"`
}

type AbilityEntry struct {
	Ability  NamedApiResource `json:"ability"`
	IsHidden bool             `json:"is_hidden"`
	Slot     int              `json:"slot"`
}

type GameIndexEntry struct {
	GameIndex int              `json:"game_index"`
	Version   NamedApiResource `json:"version"`
}

// MoveSlot holds the name of a learnable move and the url of its detail
// document, which has to be fetched separately.
type MoveSlot struct {
	Move NamedApiResource `json:"move"`
}

// Move is the per-move detail document.
type Move struct {
	Name string `json:"name"`
	// Null means the move has no accuracy stat
	Accuracy *int `json:"accuracy"`
	// Null means the move does no direct damage
	Power             *int              `json:"power"`
	PP                int               `json:"pp"`
	DamageClass       NamedApiResource  `json:"damage_class"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

type FlavorTextEntry struct {
	FlavorText   string           `json:"flavor_text"`
	Language     NamedApiResource `json:"language"`
	VersionGroup NamedApiResource `json:"version_group"`
}
