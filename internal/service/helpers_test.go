package service_test

import (
	"context"
	"testing"

	"github.com/dom/ep-app-api/internal/repository"
	"github.com/dom/ep-app-api/internal/repository/memory"
	"github.com/dom/ep-app-api/internal/service"
	"github.com/dom/ep-app-api/internal/testutil"
	"github.com/stretchr/testify/require"
)

// newServices wires services over fresh in-memory repositories with the
// built-in vocabulary loaded.
func newServices(t *testing.T) (*service.Services, *repository.Repositories) {
	t.Helper()

	repos := memory.NewRepositories()
	services := service.NewServices(repos, testutil.TestConfig())
	require.NoError(t, services.Vocabulary.Seed(context.Background(), testutil.TestVocabulary(t), true))
	return services, repos
}

func ptr[T any](v T) *T {
	return &v
}
