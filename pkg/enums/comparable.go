package enums

import "fmt"

// LocationSimilarity grades how closely a comparable's location matches the
// subject property.
type LocationSimilarity string

const (
	LocationSimilaritySimilar           LocationSimilarity = "similar"
	LocationSimilaritySlightlyDifferent LocationSimilarity = "slightly_different"
	LocationSimilarityDifferent         LocationSimilarity = "different"
)

var validLocationSimilarities = []LocationSimilarity{
	LocationSimilaritySimilar,
	LocationSimilaritySlightlyDifferent,
	LocationSimilarityDifferent,
}

// String implements fmt.Stringer.
func (l LocationSimilarity) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LocationSimilarity.
func (l LocationSimilarity) IsValid() bool {
	for _, candidate := range validLocationSimilarities {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLocationSimilarity converts raw input into a LocationSimilarity.
func ParseLocationSimilarity(value string) (LocationSimilarity, error) {
	for _, candidate := range validLocationSimilarities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid location similarity %q", value)
}
