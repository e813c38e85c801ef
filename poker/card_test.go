package poker

import "testing"

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of spades", input: "As", want: NewCard(Ace, Spades)},
		{name: "two of clubs", input: "2c", want: NewCard(Two, Clubs)},
		{name: "king of diamonds", input: "Kd", want: NewCard(King, Diamonds)},
		{name: "ten of hearts", input: "Th", want: NewCard(Ten, Hearts)},
		{name: "lowercase rank", input: "qs", want: NewCard(Queen, Spades)},
		{name: "uppercase suit", input: "9H", want: NewCard(Nine, Hearts)},
		{name: "unknown rank", input: "Xs", wantErr: true},
		{name: "unknown suit", input: "Ax", wantErr: true},
		{name: "one is not a rank", input: "1s", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err == nil && card != tc.want {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.want)
			}
		})
	}
}

func TestCardOfRejectsPartialCards(t *testing.T) {
	t.Parallel()
	// A bad suit must not leak a card with a valid rank.
	if card, err := CardOf('A', 'x'); err == nil {
		t.Fatalf("CardOf('A', 'x') = %v, want error", card)
	}
	if card, err := CardOf('?', 's'); err == nil {
		t.Fatalf("CardOf('?', 's') = %v, want error", card)
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Ace, Spades), "As"},
		{NewCard(Two, Clubs), "2c"},
		{NewCard(Ten, Diamonds), "Td"},
		{NewCard(Jack, Hearts), "Jh"},
	}
	for _, tc := range tests {
		if got := tc.card.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestRankStringRoundTrip(t *testing.T) {
	t.Parallel()
	for r := Two; r <= Ace; r++ {
		s := r.String()
		if len(s) != 1 {
			t.Fatalf("Rank(%d).String() = %q, want single character", r, s)
		}
		parsed, err := parseRank(s[0])
		if err != nil {
			t.Fatalf("parseRank(%q): %v", s, err)
		}
		if parsed != r {
			t.Errorf("round trip for rank %d gave %d", r, parsed)
		}
	}
}

func TestSuitStringRoundTrip(t *testing.T) {
	t.Parallel()
	for s := Clubs; s <= Spades; s++ {
		str := s.String()
		parsed, err := parseSuit(str[0])
		if err != nil {
			t.Fatalf("parseSuit(%q): %v", str, err)
		}
		if parsed != s {
			t.Errorf("round trip for suit %d gave %d", s, parsed)
		}
	}
}
