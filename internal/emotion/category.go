package emotion

// Category is one of the five fixed emotion labels text is scored against.
type Category string

const (
	Affection  Category = "affection"
	Longing    Category = "longing"
	Joy        Category = "joy"
	Loneliness Category = "loneliness"
	Anxiety    Category = "anxiety"
)

// Categories lists all five categories in canonical order. The order is
// what the 5-element score tuple in history items and CSV output follows.
var Categories = []Category{Affection, Longing, Joy, Loneliness, Anxiety}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case Affection, Longing, Joy, Loneliness, Anxiety:
		return true
	}
	return false
}

// Label returns the Japanese display label for the category.
func (c Category) Label() string {
	switch c {
	case Affection:
		return "好意"
	case Longing:
		return "会いたさ"
	case Joy:
		return "喜び"
	case Loneliness:
		return "寂しさ"
	case Anxiety:
		return "不安"
	}
	return string(c)
}

// Scores maps every category to a value. Zero-valued entries are present.
type Scores map[Category]float64

// NewScores returns a Scores with all five categories set to zero.
func NewScores() Scores {
	s := make(Scores, len(Categories))
	for _, c := range Categories {
		s[c] = 0
	}
	return s
}

// Max returns the largest value across all categories.
func (s Scores) Max() float64 {
	max := 0.0
	for _, c := range Categories {
		if s[c] > max {
			max = s[c]
		}
	}
	return max
}

// Tuple returns the five scores in canonical category order.
func (s Scores) Tuple() [5]float64 {
	var t [5]float64
	for i, c := range Categories {
		t[i] = s[c]
	}
	return t
}
