package request

type CreateRatingRequest struct {
	MovieID FlexValue `json:"movieId" validate:"required"`
	User    string    `json:"user,omitempty"`
	Score   FlexValue `json:"score" validate:"required"`
}
