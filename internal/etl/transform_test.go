package etl

import (
	"testing"

	"movieflix/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanMovies(t *testing.T) {
	rows := CleanMovies([]*entity.Movie{
		{ID: 1, Title: "Dune", Genre: "Sci-Fi", Year: "1984"},
		{ID: 2, Title: "Pi", Genre: "", Year: ""},
		{ID: 1, Title: "Dune copy", Genre: "Sci-Fi", Year: "1984"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, MovieRow{ID: 1, Title: "Dune", Genre: "Sci-Fi", Year: 1984}, rows[0])
	assert.Equal(t, MovieRow{ID: 2, Title: "Pi", Genre: "Unknown", Year: 0}, rows[1])
}

func TestCleanUsers(t *testing.T) {
	rows := CleanUsers([]*entity.User{
		{ID: 1, Name: "Bob", Age: "34", Country: "BR"},
		{ID: 2, Name: "Carol", Age: "", Country: ""},
		{ID: 2, Name: "Carol twin", Age: "20", Country: "AR"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, UserRow{ID: 1, Name: "Bob", Age: 34, Country: "BR"}, rows[0])
	assert.Equal(t, UserRow{ID: 2, Name: "Carol", Age: 0, Country: "Unknown"}, rows[1])
}

func TestCleanRatings(t *testing.T) {
	rows := CleanRatings([]*entity.Rating{
		{ID: 1, UserID: 0, MovieID: 1, Score: 5},
		{ID: 2, UserID: 3, MovieID: 1, Score: 0}, // non-numeric in the file
		{ID: 3, UserID: 3, MovieID: 2, Score: 6}, // out of range
		{ID: 1, UserID: 0, MovieID: 1, Score: 4}, // duplicate id
	})

	require.Len(t, rows, 1)
	assert.Equal(t, RatingRow{ID: 1, UserID: 0, MovieID: 1, Score: 5}, rows[0])
}
