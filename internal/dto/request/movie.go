package request

type CreateMovieRequest struct {
	Title string    `json:"title" validate:"required"`
	Genre string    `json:"genre" validate:"required"`
	Year  FlexValue `json:"year,omitempty"`
}
