// Package concepts tags tutor replies with curriculum concepts drawn from a
// fixed taxonomy.
package concepts

// Tag is a curriculum concept name from the taxonomy.
type Tag string

// Area groups concepts by subject.
type Area string

const (
	AreaGeometry   Area = "geometry"
	AreaAlgebra    Area = "algebra"
	AreaStatistics Area = "statistics"
	AreaNumber     Area = "number"
	AreaReading    Area = "reading-writing"
)

// Concept is one taxonomy entry. Phrases are matched by case-insensitive
// containment; Patterns catch paraphrases.
type Concept struct {
	Tag      Tag
	Area     Area
	Phrases  []string
	Patterns []string
}

// MaxTags caps the tags returned for one reply.
const MaxTags = 8
