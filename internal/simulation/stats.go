package simulation

// MaxPlayers is the largest table size the simulator supports; 10 players
// consume 25 of the 52 cards.
const MaxPlayers = 10

// ClassStats accumulates outcomes for one starting-hand class. Every
// counter is bucketed by table size: index p-1 holds the tally for tables
// of p players, so a single simulation pass produces results for every
// table size up to the configured player count at once.
type ClassStats struct {
	Occurrences [MaxPlayers]int64
	Wins        [MaxPlayers]int64
	Ties        [MaxPlayers]int64
}

// WinRate returns the fraction of occurrences at a table of the given
// size that this class won outright.
func (s *ClassStats) WinRate(players int) float64 {
	occ := s.Occurrences[players-1]
	if occ == 0 {
		return 0
	}
	return float64(s.Wins[players-1]) / float64(occ)
}

// TieRate returns the fraction of occurrences at a table of the given
// size that this class tied for the best hand.
func (s *ClassStats) TieRate(players int) float64 {
	occ := s.Occurrences[players-1]
	if occ == 0 {
		return 0
	}
	return float64(s.Ties[players-1]) / float64(occ)
}

// Results holds the accumulated statistics of a simulation run.
type Results struct {
	Trials  int
	Players int
	Classes [NumHoleClasses]ClassStats
}

// merge folds a worker's results into r.
func (r *Results) merge(other *Results) {
	r.Trials += other.Trials
	for i := range r.Classes {
		for p := 0; p < MaxPlayers; p++ {
			r.Classes[i].Occurrences[p] += other.Classes[i].Occurrences[p]
			r.Classes[i].Wins[p] += other.Classes[i].Wins[p]
			r.Classes[i].Ties[p] += other.Classes[i].Ties[p]
		}
	}
}
