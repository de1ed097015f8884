package response

import "movieflix/internal/data/entity"

type RatingResponse struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	MovieID int    `json:"movie_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// Helper converter
func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:      rating.ID,
		UserID:  rating.UserID,
		MovieID: rating.MovieID,
		Score:   rating.Score,
		Comment: rating.Comment,
	}
}
