package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/ep-app-api/internal/api"
	"github.com/dom/ep-app-api/internal/config"
	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/repository"
	"github.com/dom/ep-app-api/internal/repository/memory"
	repoPostgres "github.com/dom/ep-app-api/internal/repository/postgres"
	"github.com/dom/ep-app-api/internal/service"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a migrated
// connection. The test is skipped when -short is set or no container
// runtime is reachable.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_ep_app"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	testDB := &TestDB{Container: container}
	t.Cleanup(func() {
		testDB.Cleanup()
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}
	testDB.DSN = dsn

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	testDB.DB = db

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		tdb.Container.Terminate(context.Background())
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"seizures",
		"contacts",
		"users",
		"seizure_types",
		"contact_types",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:           "0", // Random port
		Environment:    "test",
		AllowedOrigins: []string{"http://localhost:3000"},
		LogLevel:       "error",
		BcryptCost:     bcrypt.MinCost, // Fast hashing for tests
	}
}

// TestVocabulary returns the built-in reference data
func TestVocabulary(t *testing.T) domain.Vocabulary {
	t.Helper()

	vocab, err := config.LoadVocabulary("")
	if err != nil {
		t.Fatalf("failed to load vocabulary: %v", err)
	}
	return vocab
}

// TestServer holds all components for HTTP-level testing
type TestServer struct {
	Server     *httptest.Server
	Repos      *repository.Repositories
	Services   *service.Services
	Config     *config.Config
	Vocabulary domain.Vocabulary
}

// NewTestServer creates a test server backed by in-memory repositories
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	return NewTestServerWithRepos(t, memory.NewRepositories())
}

// NewTestServerWithRepos creates a test server over the given repositories
// with the built-in vocabulary seeded.
func NewTestServerWithRepos(t *testing.T, repos *repository.Repositories) *TestServer {
	t.Helper()

	cfg := TestConfig()
	vocab := TestVocabulary(t)

	services := service.NewServices(repos, cfg)
	if err := services.Vocabulary.Seed(context.Background(), vocab, true); err != nil {
		t.Fatalf("failed to seed vocabulary: %v", err)
	}

	router := api.NewRouter(services, cfg, zap.NewNop())
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:     server,
		Repos:      repos,
		Services:   services,
		Config:     cfg,
		Vocabulary: vocab,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// URL returns the full URL for a given path
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
