package poker

// Category enumerates the classes of poker hands, ordered from weakest to
// strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// RankBits is a 13-bit mask of ranks, bit r set iff rank r is present.
// Only the low 13 bits may be used.
type RankBits uint16

// Contains reports whether the rank is present in the mask.
func (m RankBits) Contains(r Rank) bool {
	return m&(1<<r) != 0
}

// HandStrength is the total strength of a 5-card combination, packed so
// that two strengths compare by plain integer comparison:
//
//	 29      26 25      13 12       0
//	+---....---+---....---+---....---+
//	| category |  master  |  kicker  |
//	+---....---+---....---+---....---+
//
// Master and kicker are RankBits. Suits never enter the strength: they
// only select the category, so hands that differ solely in suits compare
// equal. What master and kicker mean depends on the category:
//
//	Category         Example  Master  Kicker
//	----------------------------------------
//	Straight flush   QJT98    Q       -
//	Four of a kind   7777K    7       K
//	Full house       77788    7       8
//	Flush            KT874    KT874   -
//	Straight         A2345    5       -
//	Three of a kind  888AK    8       AK
//	Two pair         TTQQA    TQ      A
//	One pair         33789    3       789
//	High card        97543    97543   -
type HandStrength uint32

const (
	categoryShift = 26
	masterShift   = 13
)

// NewHandStrength packs a category with its master and kicker rank masks.
func NewHandStrength(category Category, master, kicker RankBits) HandStrength {
	return HandStrength(category)<<categoryShift |
		HandStrength(master)<<masterShift |
		HandStrength(kicker)
}

// Category returns the hand category.
func (hs HandStrength) Category() Category {
	return Category(hs >> categoryShift)
}

// Master returns the master rank mask.
func (hs HandStrength) Master() RankBits {
	return RankBits(hs>>masterShift) & rankMask
}

// Kicker returns the kicker rank mask.
func (hs HandStrength) Kicker() RankBits {
	return RankBits(hs) & rankMask
}

// Beats reports whether hs is strictly stronger than other.
func (hs HandStrength) Beats(other HandStrength) bool {
	return hs > other
}

// Compare returns 1 if hs is stronger than other, -1 if weaker and 0 on a
// tie. Equal strength means tie; what to do with a tie is the caller's
// decision.
func (hs HandStrength) Compare(other HandStrength) int {
	switch {
	case hs > other:
		return 1
	case hs < other:
		return -1
	default:
		return 0
	}
}

// String returns the category name, e.g. "Full House".
func (hs HandStrength) String() string {
	return hs.Category().String()
}
