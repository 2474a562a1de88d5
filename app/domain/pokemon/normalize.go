package pokemon

import (
	"slices"
	"strings"

	"pokedex.dev/pokedex-api-gateway/app/utils/functional"
	"pokedex.dev/pokedex-api-gateway/app/utils/httpclients/pokeapi"
	"pokedex.dev/pokedex-api-gateway/app/utils/stringutils"
)

var canonicalStatOrder = []string{"hp", "attack", "defense", "special attack", "special defense", "speed"}

// resolveImageURL prefers official artwork, then the home render, then the default sprite.
func resolveImageURL(sprites pokeapi.PokemonSprites, placeholder string) string {
	if other := sprites.Other; other != nil {
		if url := variantURL(other.OfficialArtwork); url != "" {
			return url
		}
		if url := variantURL(other.Home); url != "" {
			return url
		}
	}
	if sprites.FrontDefault != nil && *sprites.FrontDefault != "" {
		return *sprites.FrontDefault
	}
	return placeholder
}

func variantURL(variant *pokeapi.SpriteVariant) string {
	if variant == nil || variant.FrontDefault == nil {
		return ""
	}
	return *variant.FrontDefault
}

func orderedTypes(types []pokeapi.PokemonType) []string {
	sorted := slices.Clone(types)
	slices.SortStableFunc(sorted, func(a, b pokeapi.PokemonType) int { return a.Slot - b.Slot })
	return functional.Map(sorted, func(t pokeapi.PokemonType) string { return t.Type.Name })
}

func orderedAbilities(abilities []pokeapi.PokemonAbility) []Ability {
	sorted := slices.Clone(abilities)
	slices.SortStableFunc(sorted, func(a, b pokeapi.PokemonAbility) int { return a.Slot - b.Slot })
	return functional.Map(sorted, func(a pokeapi.PokemonAbility) Ability {
		return Ability{Name: stringutils.ReplaceFirstHyphen(a.Ability.Name), IsHidden: a.IsHidden}
	})
}

// orderedStats sorts into canonical order; unrecognised stats keep their relative order at the end.
func orderedStats(stats []pokeapi.PokemonStat) []Stat {
	result := functional.Map(stats, func(s pokeapi.PokemonStat) Stat {
		return Stat{Name: stringutils.ReplaceFirstHyphen(s.Stat.Name), Value: s.BaseStat}
	})
	slices.SortStableFunc(result, func(a, b Stat) int { return statRank(a.Name) - statRank(b.Name) })
	return result
}

func statRank(name string) int {
	if i := slices.Index(canonicalStatOrder, name); i >= 0 {
		return i
	}
	return len(canonicalStatOrder)
}

// englishFlavorText returns the first English entry with line breaks flattened to spaces.
func englishFlavorText(entries []pokeapi.FlavorText) string {
	for _, entry := range entries {
		if entry.Language.Name != "en" {
			continue
		}
		text := strings.Map(func(r rune) rune {
			switch r {
			case '\n', '\f', '\r':
				return ' '
			}
			return r
		}, entry.FlavorText)
		if text == "" {
			break
		}
		return text
	}
	return DefaultDescription
}

func toSummary(record *pokeapi.Pokemon, placeholder string) PokemonSummary {
	return PokemonSummary{
		ID:       record.ID,
		Name:     record.Name,
		ImageURL: resolveImageURL(record.Sprites, placeholder),
		Types:    orderedTypes(record.Types),
	}
}

func hasType(record *pokeapi.Pokemon, typeName string) bool {
	return functional.Any(record.Types, func(t pokeapi.PokemonType) bool {
		return stringutils.EqualFold(t.Type.Name, typeName)
	})
}
