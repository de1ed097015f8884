package response

import (
	"encoding/json"

	"movieflix/internal/data/entity"
)

// Display sentinels carried over from the original data lake clients.
const (
	NoRating = "—"
	NoYear   = "s/ano"
)

// AverageScore marshals as the floored integer average of the numeric scores,
// or the no-rating sentinel when a movie has none.
type AverageScore struct {
	Sum    int
	Scored int
}

func (a AverageScore) MarshalJSON() ([]byte, error) {
	if v, ok := a.Value(); ok {
		return json.Marshal(v)
	}
	return json.Marshal(NoRating)
}

// Value returns the floored average and whether any numeric score exists.
func (a AverageScore) Value() (int, bool) {
	if a.Scored == 0 {
		return 0, false
	}
	return a.Sum / a.Scored, true
}

type MovieResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
	Year  string `json:"year"`
}

type MovieWithRatingsResponse struct {
	MovieResponse
	AvgRating    AverageScore `json:"avgRating"`
	RatingsCount int          `json:"ratingsCount"`
}

// MovieToResponse keeps the year exactly as stored; only the listing view
// substitutes the display sentinel.
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:    movie.ID,
		Title: movie.Title,
		Genre: movie.Genre,
		Year:  movie.Year,
	}
}

func MovieWithRatings(movie *entity.Movie, avg AverageScore, count int) MovieWithRatingsResponse {
	resp := MovieWithRatingsResponse{
		MovieResponse: MovieToResponse(movie),
		AvgRating:     avg,
		RatingsCount:  count,
	}
	if resp.Year == "" {
		resp.Year = NoYear
	}
	return resp
}
