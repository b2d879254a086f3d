package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"examgen/internal/cache"
	"examgen/internal/config"
	"examgen/internal/domain"
	"examgen/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ExamService turns an exam request into a question set.
type ExamService interface {
	GenerateQuestionSet(ctx context.Context, req domain.ExamRequest) ([]string, error)
	// CacheStatus reports "disabled", "ok" or "unavailable".
	CacheStatus(ctx context.Context) string
}

type examService struct {
	generators map[domain.Platform]domain.QuestionGenerator
	cache      domain.Cache
	cfg        *config.Config
	sfGroup    singleflight.Group
}

// NewExamService registers one generator per platform. cache may be nil.
func NewExamService(generators []domain.QuestionGenerator, cache domain.Cache, cfg *config.Config) ExamService {
	byPlatform := make(map[domain.Platform]domain.QuestionGenerator, len(generators))
	for _, g := range generators {
		byPlatform[g.Platform()] = g
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &examService{
		generators: byPlatform,
		cache:      cache,
		cfg:        cfg,
	}
}

// GenerateQuestionSet implements ExamService
func (s *examService) GenerateQuestionSet(ctx context.Context, req domain.ExamRequest) ([]string, error) {
	gen, ok := s.generators[req.Platform]
	if !ok {
		gen, ok = s.generators[domain.PlatformGemini]
		if !ok {
			return nil, domain.NewInternalError(fmt.Sprintf("no generator registered for %q", req.Platform), nil)
		}
	}
	req.Platform = gen.Platform()

	if s.cache == nil {
		callCtx, cancel := s.withTimeout(ctx)
		defer cancel()
		return gen.GenerateQuestions(callCtx, req)
	}

	cacheKey := questionSetCacheKey(req)
	if cached, hit := s.readCache(ctx, cacheKey); hit {
		return cached, nil
	}

	// The shared run is detached from whichever caller started it; each caller
	// stops waiting on its own cancellation or timeout.
	ch := s.sfGroup.DoChan(cacheKey, func() (interface{}, error) {
		runCtx, cancel := s.withTimeout(context.WithoutCancel(ctx))
		defer cancel()

		questions, genErr := gen.GenerateQuestions(runCtx, req)
		if genErr != nil || len(questions) == 0 {
			return questions, genErr
		}
		s.writeCache(runCtx, cacheKey, questions)
		return questions, nil
	})

	waitCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-waitCtx.Done():
		logger.Get().Warn("ExamService: stopped waiting for generation",
			zap.String("cache_key", cacheKey), zap.Error(waitCtx.Err()))
		return []string{}, domain.NewLLMServiceError(req.Platform, waitCtx.Err())
	}
	if res.Shared {
		logger.Get().Debug("ExamService: shared in-flight generation", zap.String("cache_key", cacheKey))
	}

	questions, _ := res.Val.([]string)
	if res.Err != nil {
		return questions, res.Err
	}
	// Callers may truncate or modify the slice; the shared one must stay intact.
	return append([]string(nil), questions...), nil
}

func (s *examService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.LLM.Timeout > 0 {
		return context.WithTimeout(ctx, s.cfg.LLM.Timeout)
	}
	return context.WithCancel(ctx)
}

// CacheStatus implements ExamService
func (s *examService) CacheStatus(ctx context.Context) string {
	if s.cache == nil {
		return "disabled"
	}
	if err := s.cache.Ping(ctx); err != nil {
		logger.Get().Warn("ExamService: cache ping failed", zap.Error(err))
		return "unavailable"
	}
	return "ok"
}

func (s *examService) readCache(ctx context.Context, key string) ([]string, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("ExamService: cache read failed", zap.Error(err), zap.String("cache_key", key))
		}
		return nil, false
	}

	var questions []string
	if err := json.Unmarshal([]byte(raw), &questions); err != nil || len(questions) == 0 {
		logger.Get().Warn("ExamService: discarding unreadable cache entry", zap.Error(err), zap.String("cache_key", key))
		if delErr := s.cache.Delete(ctx, key); delErr != nil {
			logger.Get().Warn("ExamService: failed to delete cache entry", zap.Error(delErr), zap.String("cache_key", key))
		}
		return nil, false
	}

	logger.Get().Info("ExamService: question set served from cache", zap.String("cache_key", key))
	return questions, true
}

func (s *examService) writeCache(ctx context.Context, key string, questions []string) {
	payload, err := json.Marshal(questions)
	if err != nil {
		logger.Get().Error("ExamService: failed to encode question set", zap.Error(err))
		return
	}
	ttl := s.cfg.QuestionSetTTL()
	if err := s.cache.Set(ctx, key, string(payload), ttl); err != nil {
		logger.Get().Warn("ExamService: cache write failed", zap.Error(err), zap.String("cache_key", key))
		return
	}
	logger.Get().Debug("ExamService: question set cached", zap.String("cache_key", key), zap.Duration("ttl", ttl))
}

func questionSetCacheKey(req domain.ExamRequest) string {
	return cache.GenerateCacheKey("exam", "questions", string(req.Platform),
		cache.HashParts(req.ClassName, req.Topic),
		fmt.Sprintf("g%d", req.GradeLevel),
		fmt.Sprintf("n%d", req.NumQuestions),
		string(req.Difficulty),
	)
}
