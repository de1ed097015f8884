package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"movieflix/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := NewRepository(dir, zap.NewNop())
	require.NoError(t, err)
	return repo, dir
}

func TestNewRepositoryCreatesTables(t *testing.T) {
	_, dir := newTestRepo(t)

	for file, header := range map[string]string{
		MoviesFile:  "id,title,genre,year\n",
		RatingsFile: "id,user_id,movie_id,score,comment\n",
		UsersFile:   "id,name,age,country\n",
	} {
		content, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err)
		assert.Equal(t, header, string(content), file)
	}
}

func TestNewRepositoryMissingRoot(t *testing.T) {
	_, err := NewRepository(filepath.Join(t.TempDir(), "nope"), zap.NewNop())
	require.Error(t, err)
}

func TestMovieRepository(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	movie := &entity.Movie{Title: "Dune", Genre: "Sci-Fi", Year: "1984"}
	require.NoError(t, repo.Movie.Create(ctx, movie))
	assert.Equal(t, 1, movie.ID)

	found, err := repo.Movie.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Dune", found.Title)

	missing, err := repo.Movie.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	// Store-assigned id.
	alice := &entity.User{Name: "alice"}
	require.NoError(t, repo.User.Create(ctx, alice))
	assert.Equal(t, 1, alice.ID)

	// Client-supplied id; the next allocation continues past it.
	dana := &entity.User{ID: 5, Name: "dana"}
	require.NoError(t, repo.User.Create(ctx, dana))

	eve := &entity.User{Name: "eve"}
	require.NoError(t, repo.User.Create(ctx, eve))
	assert.Equal(t, 6, eve.ID)

	byName, err := repo.User.FindByName(ctx, "dana")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, 5, byName.ID)

	nobody, err := repo.User.FindByName(ctx, "zed")
	require.NoError(t, err)
	assert.Nil(t, nobody)
}

func TestRatingRepositoryTrimsAndParses(t *testing.T) {
	ctx := context.Background()
	repo, dir := newTestRepo(t)

	// Rows with padding, as a hand-edited data lake may contain.
	f, err := os.OpenFile(filepath.Join(dir, RatingsFile), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("1, 0 , 2 , 5 ,\n2,0,2,bad,\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	ratings, err := repo.Rating.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 2)

	assert.Equal(t, 2, ratings[0].MovieID)
	assert.Equal(t, 5, ratings[0].Score)

	// Non-numeric score survives the read as the zero marker.
	assert.Equal(t, 0, ratings[1].Score)
}
