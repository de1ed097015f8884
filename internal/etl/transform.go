package etl

import (
	"strconv"

	"movieflix/internal/data/entity"
)

// Warehouse row types. Unlike the catalog's string-typed records, the
// warehouse wants clean integers: unknown year and age load as 0, unknown
// genre and country as "Unknown".

type MovieRow struct {
	ID    int
	Title string
	Genre string
	Year  int
}

type UserRow struct {
	ID      int
	Name    string
	Age     int
	Country string
}

type RatingRow struct {
	ID      int
	UserID  int
	MovieID int
	Score   int
}

const unknown = "Unknown"

// CleanMovies normalizes catalog movies for the warehouse and drops duplicate
// ids, keeping the first occurrence.
func CleanMovies(movies []*entity.Movie) []MovieRow {
	seen := make(map[int]bool, len(movies))
	rows := make([]MovieRow, 0, len(movies))
	for _, m := range movies {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true

		genre := m.Genre
		if genre == "" {
			genre = unknown
		}
		year, _ := strconv.Atoi(m.Year)

		rows = append(rows, MovieRow{
			ID:    m.ID,
			Title: m.Title,
			Genre: genre,
			Year:  year,
		})
	}
	return rows
}

// CleanUsers normalizes catalog users for the warehouse and drops duplicate
// ids, keeping the first occurrence.
func CleanUsers(users []*entity.User) []UserRow {
	seen := make(map[int]bool, len(users))
	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true

		country := u.Country
		if country == "" {
			country = unknown
		}
		age, _ := strconv.Atoi(u.Age)

		rows = append(rows, UserRow{
			ID:      u.ID,
			Name:    u.Name,
			Age:     age,
			Country: country,
		})
	}
	return rows
}

// CleanRatings keeps only ratings with a score inside the valid range and
// drops duplicate ids, keeping the first occurrence.
func CleanRatings(ratings []*entity.Rating) []RatingRow {
	seen := make(map[int]bool, len(ratings))
	rows := make([]RatingRow, 0, len(ratings))
	for _, r := range ratings {
		if seen[r.ID] {
			continue
		}
		if r.Score < entity.MinScore || r.Score > entity.MaxScore {
			continue
		}
		seen[r.ID] = true

		rows = append(rows, RatingRow{
			ID:      r.ID,
			UserID:  r.UserID,
			MovieID: r.MovieID,
			Score:   r.Score,
		})
	}
	return rows
}
