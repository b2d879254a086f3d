package service

import (
	"context"
	"sync"
	"time"

	"examgen/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionGenerator ---
type MockQuestionGenerator struct {
	mock.Mock
	platform domain.Platform
}

func NewMockQuestionGenerator(platform domain.Platform) *MockQuestionGenerator {
	return &MockQuestionGenerator{platform: platform}
}

func (m *MockQuestionGenerator) GenerateQuestions(ctx context.Context, req domain.ExamRequest) ([]string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockQuestionGenerator) Platform() domain.Platform {
	return m.platform
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- memoryCache ---
// memoryCache is a goroutine-safe in-process domain.Cache for concurrency tests.
type memoryCache struct {
	mu    sync.Mutex
	items map[string]string
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	c.sets++
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memoryCache) Ping(context.Context) error { return nil }

func (c *memoryCache) setCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}
