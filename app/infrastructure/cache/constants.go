package cache

const (
	CacheVersion             = "v1"
	PokemonRecordKeyPattern  = CacheVersion + ":pokeapi:pokemon:%s"
	SpeciesRecordKeyPattern  = CacheVersion + ":pokeapi:species:%s"
	EvolutionChainKeyPattern = CacheVersion + ":pokeapi:evolution-chain:%s"
	PokeAPIRecordsKeyPattern = CacheVersion + ":pokeapi:*"
)
