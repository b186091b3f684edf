package evaluator

// Category is a poker hand category. Lower values are stronger hands, so
// the constants below are listed in rank order.
type Category int

const (
	FiveOfAKind Category = iota
	RoyalFlush
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCards
	// NoCategory is returned when no rule matches a hand
	NoCategory
)

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case FiveOfAKind:
		return "Five of a Kind"
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCards:
		return "High Cards"
	default:
		return "No Category"
	}
}

// Valid reports whether c is one of the eleven real categories
func (c Category) Valid() bool {
	return c >= FiveOfAKind && c <= HighCards
}

// Compare returns 1 if c is stronger than other, -1 if weaker, 0 if equal.
// NoCategory is weaker than every real category.
func (c Category) Compare(other Category) int {
	if c < other {
		return 1
	} else if c > other {
		return -1
	}
	return 0
}

// Stronger reports whether c beats other
func (c Category) Stronger(other Category) bool {
	return c.Compare(other) > 0
}

// Categories returns every category from strongest to weakest
func Categories() []Category {
	out := make([]Category, len(rules))
	for i, r := range rules {
		out[i] = r.category
	}
	return out
}

// ParseCategory looks a category up by its display name
func ParseCategory(name string) (Category, bool) {
	for _, r := range rules {
		if r.category.String() == name {
			return r.category, true
		}
	}
	return NoCategory, false
}
