package utils

import (
	"math/rand/v2"
	"strconv"
)

// GenerateID returns the short 4-digit ID handed to participants:
// teams share it to let members join, single registrants quote it at
// the venue. Drawn uniformly from [1000, 9999] with no uniqueness
// check against existing records; a lookup on a colliding ID resolves
// to the oldest record.
func GenerateID() string {
	return strconv.Itoa(1000 + rand.IntN(9000))
}
