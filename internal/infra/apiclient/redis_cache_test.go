//go:build e2e

package apiclient_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"market-admin/internal/infra/apiclient"
	"market-admin/internal/pkg/clock"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisCacheTestSuite struct {
	suite.Suite
	container testcontainers.Container
	redisURL  string
	clock     *clock.MockClock
	cache     *apiclient.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func (s *RedisCacheTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	s.Require().NoError(err, "failed to start redis container")
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, nat.Port("6379/tcp"))
	s.Require().NoError(err)
	s.redisURL = fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func (s *RedisCacheTestSuite) TearDownSuite() {
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.container.Terminate(ctx)
	}
}

func (s *RedisCacheTestSuite) SetupTest() {
	client, err := apiclient.NewRedisClient(s.redisURL)
	s.Require().NoError(err)
	s.Require().NoError(client.FlushDB(context.Background()).Err())

	s.clock = clock.NewMockClock(time.Now())
	s.cache = apiclient.NewRedisCache(client, "test", s.clock)
}

func (s *RedisCacheTestSuite) TearDownTest() {
	s.Require().NoError(s.cache.Close())
}

func (s *RedisCacheTestSuite) store(scope, path string, ttl time.Duration) apiclient.CacheKey {
	key := apiclient.CacheKey{Scope: scope, Method: "GET", Path: path}
	epoch, err := s.cache.Epoch(context.Background())
	s.Require().NoError(err)
	stored, err := s.cache.SetIfCurrent(context.Background(), apiclient.CacheEntry{
		Key:      key,
		Value:    []byte(`{"path":"` + path + `"}`),
		StoredAt: s.clock.Now(),
		TTL:      ttl,
	}, epoch)
	s.Require().NoError(err)
	s.Require().True(stored)
	return key
}

func (s *RedisCacheTestSuite) TestRoundTrip() {
	key := s.store("a", "/bookings", time.Hour)

	entry, ok, err := s.cache.Get(context.Background(), key)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.JSONEq(`{"path":"/bookings"}`, string(entry.Value))
	s.Equal(key, entry.Key)
}

func (s *RedisCacheTestSuite) TestFreshnessFollowsClock() {
	key := s.store("a", "/stats", time.Hour)

	s.clock.Add(time.Hour)
	_, ok, err := s.cache.Get(context.Background(), key)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisCacheTestSuite) TestInvalidateResourceAcrossScopes() {
	ctx := context.Background()
	stale := []apiclient.CacheKey{s.store("a", "/booking/7", time.Hour), s.store("b", "/booking", time.Hour)}
	kept := []apiclient.CacheKey{s.store("a", "/bookings", time.Hour), s.store("a", "/stats", time.Hour)}

	s.Require().NoError(s.cache.InvalidateResource(ctx, "/booking"))

	for _, key := range stale {
		_, ok, err := s.cache.Get(ctx, key)
		s.Require().NoError(err)
		s.False(ok, key.String())
	}
	for _, key := range kept {
		_, ok, err := s.cache.Get(ctx, key)
		s.Require().NoError(err)
		s.True(ok, key.String())
	}
}

func (s *RedisCacheTestSuite) TestInvalidationRefusesEarlierReads() {
	ctx := context.Background()
	since, err := s.cache.Epoch(ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.cache.InvalidateResource(ctx, "/bookings"))
	after, err := s.cache.Epoch(ctx)
	s.Require().NoError(err)
	s.Greater(after, since)

	entry := func(path string) apiclient.CacheEntry {
		return apiclient.CacheEntry{Key: apiclient.CacheKey{Scope: "a", Method: "GET", Path: path}, StoredAt: s.clock.Now(), TTL: time.Hour}
	}

	stored, err := s.cache.SetIfCurrent(ctx, entry("/bookings/7"), since)
	s.Require().NoError(err)
	s.False(stored, "read dispatched before the invalidation")

	stored, err = s.cache.SetIfCurrent(ctx, entry("/stats"), since)
	s.Require().NoError(err)
	s.True(stored, "unrelated resource")

	stored, err = s.cache.SetIfCurrent(ctx, entry("/bookings/7"), after)
	s.Require().NoError(err)
	s.True(stored, "read dispatched after the invalidation")

	// bookkeeping keys survive a later invalidation scan
	s.Require().NoError(s.cache.InvalidateResource(ctx, "/stats"))
	again, err := s.cache.Epoch(ctx)
	s.Require().NoError(err)
	s.Equal(after+1, again)
}

func (s *RedisCacheTestSuite) TestClientOverRedis() {
	backend := newFakeBackend()
	client := apiclient.New(apiclient.Options{BaseURL: newCountingServer(s.T(), backend), Cache: s.cache, Clock: s.clock})

	for range 3 {
		require.NoError(s.T(), client.Get(context.Background(), "/bookings", apiclient.RequestOptions{}, &payload{}))
	}
	require.NoError(s.T(), client.Put(context.Background(), "/bookings/1", apiclient.RequestOptions{}, nil))
	require.NoError(s.T(), client.Get(context.Background(), "/bookings", apiclient.RequestOptions{}, &payload{}))

	s.Equal(2, backend.Hits("GET", "/bookings"))
}
