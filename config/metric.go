package config

import (
	"fmt"
	"sort"

	"wcl_rankings/share"
)

// CharacterRankingMetricType values accepted by the v2 API.
var metrics = []string{
	"bossdps",
	"bossrdps",
	"bosscdps",
	"bossndps",
	"cdps",
	"default",
	"dps",
	"healercombinedbossdps",
	"healercombinedbossrdps",
	"healercombineddps",
	"healercombinedrdps",
	"hps",
	"krsi",
	"ndps",
	"playerscore",
	"playerspeed",
	"rdps",
	"tankcombinedbossdps",
	"tankcombinedbossrdps",
	"tankcombineddps",
	"tankcombinedrdps",
	"tankhps",
	"wdps",
}

func init() {
	sort.Strings(metrics)
}

func IsMetric(s string) bool {
	return share.InSortedSlice(metrics, s)
}

// DifficultyLabel names a raid difficulty id.
func DifficultyLabel(difficulty int) string {
	switch difficulty {
	case 1:
		return "LFR"
	case 3:
		return "Normal"
	case 4:
		return "Heroic"
	case 5:
		return "Mythic"
	}
	return fmt.Sprintf("Difficulty %d", difficulty)
}
