package entity

// User is one row of the users table. Age and Country are optional and stored
// empty when absent; Age stays a string so an unset value round-trips as ""
// rather than a fabricated zero.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     string `json:"age"`
	Country string `json:"country"`
}
