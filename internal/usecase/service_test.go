package usecase

import (
	"testing"

	"movieflix/internal/data/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestService backs the whole service stack with tables in a temp dir.
func newTestService(t *testing.T) *Service {
	t.Helper()
	repo, err := repository.NewRepository(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return NewService(repo, zap.NewNop())
}
