package pokeapi

type NamedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type APIResource struct {
	URL string `json:"url"`
}

type NamedAPIResourceList struct {
	Count   int                `json:"count"`
	Next    *string            `json:"next"`
	Results []NamedAPIResource `json:"results"`
}

type Pokemon struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Height    int              `json:"height"` // decimetres
	Weight    int              `json:"weight"` // hectograms
	Stats     []PokemonStat    `json:"stats"`
	Abilities []PokemonAbility `json:"abilities"`
	Types     []PokemonType    `json:"types"`
	Sprites   PokemonSprites   `json:"sprites"`
	Species   NamedAPIResource `json:"species"`
}

type PokemonStat struct {
	BaseStat int              `json:"base_stat"`
	Effort   int              `json:"effort"`
	Stat     NamedAPIResource `json:"stat"`
}

type PokemonAbility struct {
	Ability  NamedAPIResource `json:"ability"`
	IsHidden bool             `json:"is_hidden"`
	Slot     int              `json:"slot"`
}

type PokemonType struct {
	Slot int              `json:"slot"`
	Type NamedAPIResource `json:"type"`
}

type PokemonSprites struct {
	FrontDefault *string       `json:"front_default"`
	Other        *OtherSprites `json:"other,omitempty"`
}

type OtherSprites struct {
	DreamWorld      *SpriteVariant `json:"dream_world,omitempty"`
	Home            *SpriteVariant `json:"home,omitempty"`
	OfficialArtwork *SpriteVariant `json:"official-artwork,omitempty"`
}

type SpriteVariant struct {
	FrontDefault *string `json:"front_default"`
}

type Species struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
	EvolutionChain    *APIResource `json:"evolution_chain"`
}

type FlavorText struct {
	FlavorText string           `json:"flavor_text"`
	Language   NamedAPIResource `json:"language"`
	Version    NamedAPIResource `json:"version"`
}

type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of the upstream evolution graph; EvolvesTo may branch.
type ChainLink struct {
	Species   NamedAPIResource `json:"species"`
	EvolvesTo []ChainLink      `json:"evolves_to"`
}
