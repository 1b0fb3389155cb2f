package randutil

// Scripted is a Source that replays fixed answers. It is meant for tests that
// need to know exactly which item is drawn or how a card is laid out.
//
// Picks are consumed in order by IntN and clamped into range; once exhausted
// IntN returns 0. Perms are consumed in order by Perm; a missing or
// wrongly-sized permutation falls back to the identity.
type Scripted struct {
	Picks []int
	Perms [][]int
}

// IntN implements Source.
func (s *Scripted) IntN(n int) int {
	if len(s.Picks) == 0 {
		return 0
	}
	v := s.Picks[0]
	s.Picks = s.Picks[1:]
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// Perm implements Source.
func (s *Scripted) Perm(n int) []int {
	if len(s.Perms) > 0 {
		p := s.Perms[0]
		s.Perms = s.Perms[1:]
		if len(p) == n {
			out := make([]int, n)
			copy(out, p)
			return out
		}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
