package rank

import (
	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/pkg/utils"
)

// Rank label values. TagRec priority when a candidate wins several
// categories: Eco-Friendly > Fastest > Cheapest > Shortest; candidates that
// win none are "Balanced".
const (
	TagFastest  = "Fastest"
	TagEco      = "Eco-Friendly"
	TagCheapest = "Cheapest"
	TagShortest = "Shortest"
	RecBalanced = "Balanced"
)

// minIndex returns the index of the first candidate with the minimum metric
// value. Ties break in insertion order: the earliest candidate wins, same
// as a stable sort's index 0.
func minIndex(cands []entities.RouteCandidate, metric func(entities.RouteCandidate) float64) int {
	best := 0
	for i := 1; i < len(cands); i++ {
		if metric(cands[i]) < metric(cands[best]) {
			best = i
		}
	}
	return best
}

// Rank computes the four independent orderings over the candidate set and
// assigns each candidate its winning tags plus the single rec label.
// Re-ranking an already-tagged set with unchanged inputs reproduces
// identical tags, so Rank is safe to call more than once.
func Rank(cands []entities.RouteCandidate) {
	if len(cands) == 0 {
		return
	}

	fastest := minIndex(cands, func(c entities.RouteCandidate) float64 { return c.TimeSeconds })
	cleanest := minIndex(cands, func(c entities.RouteCandidate) float64 { return float64(c.AqiScore) })
	cheapest := minIndex(cands, func(c entities.RouteCandidate) float64 { return utils.ParseFare(c.Cost) })
	shortest := minIndex(cands, func(c entities.RouteCandidate) float64 { return c.LengthKm })

	for i := range cands {
		tags := []string{}
		if i == fastest {
			tags = append(tags, TagFastest)
		}
		if i == cleanest {
			tags = append(tags, TagEco)
		}
		if i == cheapest {
			tags = append(tags, TagCheapest)
		}
		if i == shortest {
			tags = append(tags, TagShortest)
		}
		cands[i].Tags = tags
		cands[i].Rec = recLabel(tags)
	}
}

func recLabel(tags []string) string {
	has := func(tag string) bool {
		for _, t := range tags {
			if t == tag {
				return true
			}
		}
		return false
	}
	switch {
	case has(TagEco):
		return TagEco
	case has(TagFastest):
		return TagFastest
	case has(TagCheapest):
		return TagCheapest
	case has(TagShortest):
		return TagShortest
	default:
		return RecBalanced
	}
}

// missingAqiSentinel stands in for an unset pollution score during
// health-preference selection, pushing unscored candidates to the back.
const missingAqiSentinel = 999

// SelectActive picks the initially-selected candidate id for the user's
// stated preference. Balanced takes the first candidate in emission order;
// the other axes pick the minimum of the corresponding metric, ties broken
// by insertion order.
func SelectActive(cands []entities.RouteCandidate, pref entities.Preference) int {
	if len(cands) == 0 {
		return 0
	}

	var idx int
	switch pref {
	case entities.PreferenceSpeed:
		idx = minIndex(cands, func(c entities.RouteCandidate) float64 { return c.TimeSeconds })
	case entities.PreferenceEco:
		idx = minIndex(cands, func(c entities.RouteCandidate) float64 { return float64(c.CO2Emission) })
	case entities.PreferenceCost:
		idx = minIndex(cands, func(c entities.RouteCandidate) float64 { return utils.ParseFare(c.Cost) })
	case entities.PreferenceHealth:
		idx = minIndex(cands, func(c entities.RouteCandidate) float64 {
			if c.AqiScore == 0 {
				return missingAqiSentinel
			}
			return float64(c.AqiScore)
		})
	default:
		idx = 0
	}
	return cands[idx].ID
}
