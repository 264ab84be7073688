package quiz

// GuessDistribution plays runs sessions where every answer comes from
// pick(len(options)) and counts how often each score occurred. The result
// has len(questions)+1 buckets, indexed by score.
func GuessDistribution(questions []Question, runs int, pick func(n int) int, opts ...Option) ([]int, error) {
	s, err := NewSession(questions, opts...)
	if err != nil {
		return nil, err
	}
	counts := make([]int, s.Len()+1)
	for i := 0; i < runs; i++ {
		s.Restart()
		for s.Phase() == PhaseActive {
			q, _ := s.Current()
			s.Select(pick(len(q.Options)))
			if !s.Advance() {
				// pick returned an invalid option; count it as a miss
				s.Select(wrongOption(q))
				s.Advance()
			}
		}
		counts[s.Score()]++
	}
	return counts, nil
}

// wrongOption returns some wrong option of q.
func wrongOption(q Question) int {
	if q.Answer == 0 {
		return 1
	}
	return 0
}

// PassRate is the share of runs in counts that reached threshold.
func PassRate(counts []int, threshold int) float64 {
	total, passed := 0, 0
	for score, n := range counts {
		total += n
		if score >= threshold {
			passed += n
		}
	}
	if total == 0 {
		return 0
	}
	return float64(passed) / float64(total)
}
