package usecase

import (
	"context"
	"testing"

	"movieflix/internal/data/entity"
	"movieflix/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRating(t *testing.T) {
	ctx := context.Background()

	seedMovie := func(t *testing.T, svc *Service) {
		t.Helper()
		_, err := svc.Movie.CreateMovie(ctx, &request.CreateMovieRequest{Title: "Dune", Genre: "Sci-Fi"})
		require.NoError(t, err)
	}

	t.Run("anonymous rating uses the sentinel user id", func(t *testing.T) {
		svc := newTestService(t)
		seedMovie(t, svc)

		rating, err := svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
			MovieID: request.FlexValue("1"),
			Score:   request.FlexValue("5"),
		})
		require.NoError(t, err)

		assert.Equal(t, 1, rating.ID)
		assert.Equal(t, entity.AnonymousUserID, rating.UserID)
		assert.Equal(t, 1, rating.MovieID)
		assert.Equal(t, 5, rating.Score)
	})

	t.Run("score outside range fails validation", func(t *testing.T) {
		svc := newTestService(t)
		seedMovie(t, svc)

		for _, score := range []string{"0", "6", "abc", "4.5"} {
			_, err := svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
				MovieID: request.FlexValue("1"),
				Score:   request.FlexValue(score),
			})
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr, "score %q", score)
			assert.Equal(t, "score", vErr.Field)
		}
	})

	t.Run("missing movie is not found", func(t *testing.T) {
		svc := newTestService(t)
		seedMovie(t, svc)

		_, err := svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
			MovieID: request.FlexValue("99"),
			Score:   request.FlexValue("5"),
		})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("new user name creates a name-only user", func(t *testing.T) {
		svc := newTestService(t)
		seedMovie(t, svc)

		rating, err := svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
			MovieID: request.FlexValue("1"),
			User:    "alice",
			Score:   request.FlexValue("5"),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, rating.UserID)

		users, err := svc.User.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "alice", users[0].Name)
		assert.Equal(t, "", users[0].Age)
		assert.Equal(t, "", users[0].Country)
	})

	t.Run("same name reuses the allocated user id", func(t *testing.T) {
		svc := newTestService(t)
		seedMovie(t, svc)

		first, err := svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
			MovieID: request.FlexValue("1"),
			User:    "alice",
			Score:   request.FlexValue("5"),
		})
		require.NoError(t, err)

		second, err := svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
			MovieID: request.FlexValue("1"),
			User:    "alice",
			Score:   request.FlexValue("3"),
		})
		require.NoError(t, err)

		assert.Equal(t, first.UserID, second.UserID)

		users, err := svc.User.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("anonymous and named histories stay separate", func(t *testing.T) {
		svc := newTestService(t)
		seedMovie(t, svc)

		anon, err := svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
			MovieID: request.FlexValue("1"),
			Score:   request.FlexValue("4"),
		})
		require.NoError(t, err)

		named, err := svc.Rating.CreateRating(ctx, &request.CreateRatingRequest{
			MovieID: request.FlexValue("1"),
			User:    "bob",
			Score:   request.FlexValue("4"),
		})
		require.NoError(t, err)

		assert.Equal(t, entity.AnonymousUserID, anon.UserID)
		assert.NotEqual(t, anon.UserID, named.UserID)
	})
}
