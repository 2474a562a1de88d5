package pokemon

import (
	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api-gateway/app/utils/stringutils"
)

// ParseEvolutionChain flattens an evolution graph into a single root-to-leaf path.
// Only the first branch is followed at every level, so alternate evolutions
// (eevee's, for one) are not represented. Nodes whose species URL does not end
// in a numeric id are skipped.
func ParseEvolutionChain(root *pokeapi.ChainLink) []EvolutionStage {
	stages := make([]EvolutionStage, 0)
	for node := root; node != nil; {
		if id, ok := stringutils.LastPathSegmentInt(node.Species.URL); ok {
			stages = append(stages, EvolutionStage{
				ID:   id,
				Name: stringutils.ReplaceFirstHyphen(node.Species.Name),
			})
		}
		if len(node.EvolvesTo) == 0 {
			break
		}
		node = &node.EvolvesTo[0]
	}
	return stages
}
