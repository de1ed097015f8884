package usecase

import (
	"context"
	"testing"

	"movieflix/internal/dto/request"
	"movieflix/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("first movie gets id 1", func(t *testing.T) {
		svc := newTestService(t)

		movie, err := svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{
			Title: "Dune",
			Genre: "Sci-Fi",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, movie.ID)
		assert.Equal(t, "Dune", movie.Title)
		assert.Equal(t, "Sci-Fi", movie.Genre)
		assert.Equal(t, "", movie.Year)
	})

	t.Run("ids are sequential", func(t *testing.T) {
		svc := newTestService(t)

		first, err := svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{Title: "Dune", Genre: "Sci-Fi"})
		require.NoError(t, err)
		second, err := svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{Title: "Pi", Genre: "Drama", Year: "1998"})
		require.NoError(t, err)

		assert.Equal(t, 1, first.ID)
		assert.Equal(t, 2, second.ID)
		assert.Equal(t, "1998", second.Year)
	})

	t.Run("missing title or genre is a validation error", func(t *testing.T) {
		svc := newTestService(t)

		for _, req := range []*request.CreateMovieRequest{
			{Genre: "Sci-Fi"},
			{Title: "Dune"},
			{},
		} {
			_, err := svc.Movie.CreateMovie(ctx, req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		}
	})

	t.Run("title with embedded delimiter survives", func(t *testing.T) {
		svc := newTestService(t)

		title := "Crouching Tiger, Hidden Dragon"
		_, err := svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{Title: title, Genre: "Wuxia"})
		require.NoError(t, err)

		movies, err := svc.Movie.ListMoviesWithRatings(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, title, movies[0].Title)
	})
}

func TestListMoviesWithRatings(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog lists nothing", func(t *testing.T) {
		svc := newTestService(t)

		movies, err := svc.Movie.ListMoviesWithRatings(ctx)
		require.NoError(t, err)
		assert.Empty(t, movies)
	})

	t.Run("movie without ratings shows sentinels", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{Title: "Dune", Genre: "Sci-Fi"})
		require.NoError(t, err)

		movies, err := svc.Movie.ListMoviesWithRatings(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 1)

		assert.Equal(t, 0, movies[0].RatingsCount)
		_, ok := movies[0].AvgRating.Value()
		assert.False(t, ok)
		assert.Equal(t, response.NoYear, movies[0].Year)
	})

	t.Run("average is floored", func(t *testing.T) {
		svc := newTestService(t)
		movie, err := svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{Title: "Dune", Genre: "Sci-Fi", Year: "1984"})
		require.NoError(t, err)

		for _, score := range []string{"5", "3"} {
			_, err := svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
				MovieID: request.FlexValue("1"),
				Score:   request.FlexValue(score),
			})
			require.NoError(t, err)
		}

		movies, err := svc.Movie.ListMoviesWithRatings(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 1)

		avg, ok := movies[0].AvgRating.Value()
		require.True(t, ok)
		assert.Equal(t, 4, avg)
		assert.Equal(t, 2, movies[0].RatingsCount)
		assert.Equal(t, "1984", movies[0].Year)
		assert.Equal(t, movie.ID, movies[0].ID)
	})

	t.Run("ratings only count for their movie", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{Title: "Dune", Genre: "Sci-Fi"})
		require.NoError(t, err)
		_, err = svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{Title: "Pi", Genre: "Drama"})
		require.NoError(t, err)

		_, err = svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
			MovieID: request.FlexValue("2"),
			Score:   request.FlexValue("5"),
		})
		require.NoError(t, err)

		movies, err := svc.Movie.ListMoviesWithRatings(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 2)

		assert.Equal(t, 0, movies[0].RatingsCount)
		assert.Equal(t, 1, movies[1].RatingsCount)
	})
}
