package entity

// Rating is one row of the ratings table. UserID 0 is the anonymous sentinel.
// Score 0 marks a persisted row whose score column was not numeric; such rows
// still count toward a movie's rating count but are excluded from its average.
type Rating struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	MovieID int    `json:"movie_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

const (
	// AnonymousUserID is the reserved user id for ratings submitted without
	// an associated user name.
	AnonymousUserID = 0

	MinScore = 1
	MaxScore = 5
)
