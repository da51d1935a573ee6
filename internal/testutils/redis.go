package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisAddrEnv points tests at an already running Redis instead of a
// container
const RedisAddrEnv = "WILRAN_TEST_REDIS_ADDR"

const redisImage = "redis:7-alpine"

// TestRedisConfig holds configuration for test Redis instances
type TestRedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DefaultTestRedisConfig returns the configuration from RedisAddrEnv, or
// nil when a container should be started
func DefaultTestRedisConfig() *TestRedisConfig {
	addr := os.Getenv(RedisAddrEnv)
	if addr == "" {
		return nil
	}
	return &TestRedisConfig{
		Addr: addr,
		DB:   15, // Use DB 15 for tests to avoid conflicts
	}
}

// StartRedisContainer runs a throwaway Redis and returns its address. The
// test is skipped when no container runtime is available.
func StartRedisContainer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Redis container not available for testing: %v", err)
	}

	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err, "Failed to resolve Redis container endpoint")
	return endpoint
}

// CreateTestRedisClient creates a Redis client for testing against cfg, or
// against a fresh container when cfg is nil
func CreateTestRedisClient(t *testing.T, cfg *TestRedisConfig) redis.UniversalClient {
	t.Helper()
	if cfg == nil {
		cfg = &TestRedisConfig{Addr: StartRedisContainer(t)}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := WaitForRedis(client, 5*time.Second); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing: %v", err)
	}

	ctx := context.Background()
	require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush test Redis database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

// CreateTestRedisClientOrSkip creates a Redis client or skips the test if Redis is not available
func CreateTestRedisClientOrSkip(t *testing.T) redis.UniversalClient {
	t.Helper()
	return CreateTestRedisClient(t, DefaultTestRedisConfig())
}

// WaitForRedis pings client until it answers or timeout passes
func WaitForRedis(client redis.UniversalClient, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		err := client.Ping(ctx).Err()
		cancel()

		if err == nil {
			return nil
		}

		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("redis not ready after %v", timeout)
}
