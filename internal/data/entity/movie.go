package entity

// Movie is one row of the movies table. Year stays a string because it is
// optional in the source data: an absent year is stored empty and rendered
// with a display sentinel, never guessed.
type Movie struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
	Year  string `json:"year"`
}
