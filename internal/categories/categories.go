package categories

import "math/rand/v2"

var All = []string{
	"chair", "hat", "boat", "shoe", "wig", "hair tie", "apple", "toothbrush",
	"fork", "shirt", "belt", "table", "bat", "car", "pen", "bicycle",
	"ice cube tray", "knife", "purse", "cat",
}

// RandomPair picks two different categories. A nil rng uses the global source.
func RandomPair(rng *rand.Rand) (string, string) {
	intn := rand.IntN
	if rng != nil {
		intn = rng.IntN
	}

	first := intn(len(All))
	second := intn(len(All) - 1)
	if second >= first {
		second++
	}
	return All[first], All[second]
}
