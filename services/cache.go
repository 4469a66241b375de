package services

import (
	"time"

	"rozklad-api/models"

	"github.com/patrickmn/go-cache"
)

// Ключ поточного розкладу в кеші
const CacheKeySchedule = "schedule:current"

type CacheService struct {
	cache *cache.Cache
}

func NewCacheService(defaultExpiration, cleanupInterval time.Duration) *CacheService {
	return &CacheService{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *CacheService) Get(key string) (interface{}, bool) {
	return s.cache.Get(key)
}

func (s *CacheService) Set(key string, value interface{}, duration time.Duration) {
	s.cache.Set(key, value, duration)
}

func (s *CacheService) Delete(key string) {
	s.cache.Delete(key)
}

func (s *CacheService) Flush() {
	s.cache.Flush()
}

// GetParseResult — типізований доступ до закешованого розкладу
func (s *CacheService) GetParseResult(key string) (models.ParseResult, bool) {
	value, found := s.cache.Get(key)
	if !found {
		return models.ParseResult{}, false
	}
	result, ok := value.(models.ParseResult)
	return result, ok
}
