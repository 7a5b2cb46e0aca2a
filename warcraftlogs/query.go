package warcraftlogs

import (
	_ "embed"
)

//go:embed query/CharacterRankings.graphql
var queryCharacterRankings string

type QueryParams struct {
	EncounterID int
	Difficulty  int
	Metric      string
	Page        int
}

func (p QueryParams) variables() map[string]interface{} {
	return map[string]interface{}{
		"encounterID": p.EncounterID,
		"difficulty":  p.Difficulty,
		"metric":      p.Metric,
		"page":        p.Page,
	}
}
