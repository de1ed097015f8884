package usecase

import "movieflix/internal/data/entity"

// ratingTally accumulates the read-time join of ratings against one movie.
// count covers every rating referencing the movie; sum and scored only the
// ones whose score column held a number, so a hand-edited bad row still shows
// up in ratingsCount without skewing the average.
type ratingTally struct {
	sum    int
	scored int
	count  int
}

// tallyRatings indexes all ratings by movie id in a single pass. The listing
// path then joins each movie against its tally in O(1).
func tallyRatings(ratings []*entity.Rating) map[int]ratingTally {
	tallies := make(map[int]ratingTally)
	for _, r := range ratings {
		t := tallies[r.MovieID]
		t.count++
		if r.Score != 0 {
			t.sum += r.Score
			t.scored++
		}
		tallies[r.MovieID] = t
	}
	return tallies
}
