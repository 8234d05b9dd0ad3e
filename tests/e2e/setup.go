//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"market-admin/cmd/bootstrap"
	"market-admin/cmd/bootstrap/components"
	"market-admin/internal/infra/apiclient"
	"market-admin/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per-suite environment: Redis cache, fake admin API, fx app
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config, *FakeAdminAPI, *redis.Client) {
	redisInfo := startContainers(t)
	backend := NewFakeAdminAPI(t)

	cfg := createTestConfig(redisInfo, backend)
	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	rdb, err := apiclient.NewRedisClient(cfg.Cache.RedisURL)
	require.NoError(t, err, "redis client for cleanup")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
		_ = rdb.Close()
	})

	slog.Info("E2E environment ready",
		"redis_host", redisInfo.Host,
		"redis_port", redisInfo.Port.Port(),
		"admin_api", backend.URL())

	return router, cfg, backend, rdb
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	redisInfo, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to read redis container address")
	return redisInfo
}

// ------------------------------------------------------------
// Application built from the production fx modules
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			bootstrap.NewRoutePaths,
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.APIClientModule,
		components.AdminAPIModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("fx application did not provide a router")
	}
	return router, app
}

func createTestConfig(redisInfo ContainerInfo, backend *FakeAdminAPI) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.API.BaseURL = backend.URL() + adminBase
	testConfig.API.PublicURL = backend.URL() + "/api"
	testConfig.API.Timeout = 5 * time.Second
	testConfig.Cache.Driver = "redis"
	testConfig.Cache.RedisURL = fmt.Sprintf("redis://%s:%s/0", redisInfo.Host, redisInfo.Port.Port())
	// suites run in parallel against one Redis
	testConfig.Cache.Prefix = "market-admin-e2e-" + uuid.NewString()
	return testConfig
}

// ------------------------------------------------------------
// Redis container, started once per test process
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")

		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate redis container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite for e2e tests
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Config  config.Config
	Backend *FakeAdminAPI
	Redis   *redis.Client
}

func (s *SharedSuite) SetupSuite() {
	s.Router, s.Config, s.Backend, s.Redis = setupE2EEnvironment(s.T())
	require.NotEmpty(s.T(), s.Config.API.BaseURL, "config not populated")
}

// SetupTest starts every test from a cold cache and the seeded backend.
func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), s.clearCache(s.T().Context()), "failed to clear cached responses")
	s.Backend.Reset()
}

// CachedKeys lists the Redis keys written by this suite's application.
func (s *SharedSuite) CachedKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.Redis.Scan(ctx, 0, s.Config.Cache.Prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}

func (s *SharedSuite) clearCache(ctx context.Context) error {
	keys, err := s.CachedKeys(ctx)
	if err != nil || len(keys) == 0 {
		return err
	}
	return s.Redis.Del(ctx, keys...).Err()
}

func (s *SharedSuite) SetupSubTest() {
	s.SetupTest()
}
