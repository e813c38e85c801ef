package poker

import "math/bits"

// Evaluate returns the strength of the strongest 5-card combination in a
// hand of five to seven cards. It is a total function over any hand that
// satisfies the Hand precondition: it never fails, allocates nothing, and
// runs a fixed, input-independent number of bitwise operations, so it is
// safe to call from any number of goroutines at once.
//
// It never enumerates the 21 five-card subsets of a 7-card hand. Instead,
// the four per-suit presence planes are combined into rank-occurrence
// masks ("rank appears in at least k suits"), the suit count fields give
// the flushed suit directly, and straights fall out of a shift-and-AND
// cascade. Categories are tested from strongest to weakest; the first
// match wins.
func Evaluate(h Hand) HandStrength {
	v := uint64(h) & presenceMask
	sc := uint64(h) & countMask

	// Combine the four presence planes into occurrence masks. Each step
	// folds one plane in, promoting ranks already seen k times to k+1.
	// This is a per-bit-column population count done in a handful of
	// AND/ORs instead of a loop over ranks. A rank occurs at most once
	// per suit, so ranks4 set means four of a kind of that rank.
	m := RankBits(v & rankMask)
	ranksPresent := m

	m = RankBits(v >> 16 & rankMask)
	ranks2 := ranksPresent & m
	ranksPresent |= m

	m = RankBits(v >> 32 & rankMask)
	ranks3 := ranks2 & m
	ranks2 |= ranksPresent & m
	ranksPresent |= m

	m = RankBits(v >> 48 & rankMask)
	ranks4 := ranks3 & m
	ranks3 |= ranks2 & m
	ranks2 |= ranksPresent & m
	ranksPresent |= m

	// Find the flushed suit, if any. With at most 7 cards only one suit
	// can hold 5 or more. A count field of 5 (101), 6 (110) or 7 (111)
	// has the top bit set together with at least one lower bit, whereas
	// counts up to 4 fail that test. Note the flushed lane must be read
	// off the test result: a lane with count 4 (100) also has its top
	// counter bit set, so scanning the raw count fields can pick the
	// wrong suit.
	var ranksFlushed RankBits
	if t := sc & (sc<<1 | sc<<2) & 0x8000_8000_8000_8000; t != 0 {
		suit := uint((bits.Len64(t) - 1) / laneBits)
		ranksFlushed = RankBits(v>>(laneBits*suit)) & rankMask
	}

	// Straight flush. With more than 5 cards a straight and a flush do
	// not imply a straight flush, so the straight test runs within the
	// flushed suit only.
	if ranksFlushed != 0 {
		if sf := straightHigh(ranksFlushed); sf != 0 {
			return NewHandStrength(StraightFlush, keepHighestBit(sf), 0)
		}
	}

	// Four of a kind. At most one rank can qualify with 7 cards.
	if ranks4 != 0 {
		kicker := keepHighestBit(ranksPresent &^ ranks4)
		return NewHandStrength(FourOfAKind, ranks4, kicker)
	}

	// Full house. With 7 cards there may be two ranks with three
	// occurrences; the higher becomes the trips and the lower is still
	// in ranks2, making it eligible as the pair.
	if ranks3 != 0 {
		master := keepHighestBit(ranks3)
		if pair := ranks2 &^ master; pair != 0 {
			return NewHandStrength(FullHouse, master, keepHighestBit(pair))
		}
	}

	if ranksFlushed != 0 {
		return NewHandStrength(Flush, keepHighestBits(ranksFlushed, 5), 0)
	}

	if st := straightHigh(ranksPresent); st != 0 {
		return NewHandStrength(Straight, keepHighestBit(st), 0)
	}

	// Three of a kind. Two trips would already have matched as a full
	// house, so ranks3 holds a single rank here.
	if ranks3 != 0 {
		kicker := keepHighestBits(ranksPresent&^ranks3, 2)
		return NewHandStrength(ThreeOfAKind, ranks3, kicker)
	}

	// Two pair and one pair. Kickers are truncated to the category's
	// width: a 7-card one-pair hand has five side ranks but only the top
	// three break ties. Keeping the extras would make hands that ought
	// to tie compare unequal.
	if ranks2 != 0 {
		master := keepHighestBit(ranks2)
		if rest := ranks2 &^ master; rest != 0 {
			master |= keepHighestBit(rest)
			kicker := keepHighestBit(ranksPresent &^ master)
			return NewHandStrength(TwoPair, master, kicker)
		}
		kicker := keepHighestBits(ranksPresent&^master, 3)
		return NewHandStrength(OnePair, master, kicker)
	}

	return NewHandStrength(HighCard, keepHighestBits(ranksPresent, 5), 0)
}

// straightHigh returns a mask of the high cards of every straight in m,
// or zero when m holds no straight. The ace bit is first copied below the
// two so the wheel (A-2-3-4-5) is found like any other straight; five
// consecutive set bits then survive a five-way shift-AND, and each
// surviving bit marks a straight's high card.
func straightHigh(m RankBits) RankBits {
	w := uint16(m)<<1 | uint16(m)>>12
	seq := w & (w << 1) & (w << 2) & (w << 3) & (w << 4)
	return RankBits(seq >> 1)
}

// keepHighestBits returns x with only its n highest set bits kept, or all
// of x when it has fewer than n bits.
func keepHighestBits(x RankBits, n int) RankBits {
	var kept RankBits
	for i := 0; i < n && x != 0; i++ {
		b := bits.Len16(uint16(x)) - 1
		kept |= 1 << b
		x &^= 1 << b
	}
	return kept
}

// keepHighestBit returns the highest set bit of x, or zero.
func keepHighestBit(x RankBits) RankBits {
	if x == 0 {
		return 0
	}
	return 1 << (bits.Len16(uint16(x)) - 1)
}
