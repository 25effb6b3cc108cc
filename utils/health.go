package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services. A nil
// pointer means the service is not configured.
type HealthStatus struct {
	Mongo     *bool     `json:"mongo,omitempty"`
	Redis     *bool     `json:"redis,omitempty"`
	Documents bool      `json:"documents"`
	Files     bool      `json:"files"`
	Auth      bool      `json:"auth"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor pings the connection-oriented backends periodically and keeps
// the latest snapshot.
type HealthMonitor struct {
	redis *redis.Client
	mongo *mongo.Client
	base  HealthStatus

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor returns a monitor for the given clients. Either may be nil.
// documents, files and auth record which gateways have a backend at all.
func NewHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client, documents, files, auth bool) *HealthMonitor {
	m := &HealthMonitor{
		redis: redisClient,
		mongo: mongoClient,
		base:  HealthStatus{Documents: documents, Files: files, Auth: auth},
	}
	m.current = m.base
	return m
}

// GetHealthStatus returns latest stored health snapshot.
func (m *HealthMonitor) GetHealthStatus() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every configured client once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	status := m.base
	if m.redis != nil {
		ok := m.redis.Ping(ctx).Err() == nil
		status.Redis = &ok
	}
	if m.mongo != nil {
		ok := m.mongo.Ping(ctx, nil) == nil
		status.Mongo = &ok
	}
	status.CheckedAt = time.Now()

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start runs Check every interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		m.Check(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}

// Healthy reports whether every configured connection answered its last ping.
func (s HealthStatus) Healthy() bool {
	if s.Redis != nil && !*s.Redis {
		return false
	}
	if s.Mongo != nil && !*s.Mongo {
		return false
	}
	return true
}
