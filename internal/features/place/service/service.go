package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"meowtool-backend/internal/common/cache"
	"meowtool-backend/internal/common/logger"
	"meowtool-backend/internal/common/validation"
	"meowtool-backend/internal/features/place/models"
	"meowtool-backend/internal/platform/roblox"
)

const errorEchoLength = 100

type PlaceService interface {
	Gamepasses(ctx context.Context, placeID int64) *models.ParseResult
	Badges(ctx context.Context, placeID int64) *models.ParseResult
}

type placeService struct {
	endpoints roblox.Endpoints
	cache     *cache.Service // nil when Redis is not configured
	cacheTTL  time.Duration
}

// NewPlaceService creates the experience-metadata fetcher. cacheService may
// be nil, which disables caching.
func NewPlaceService(endpoints roblox.Endpoints, cacheService *cache.Service, cacheTTL time.Duration) PlaceService {
	return &placeService{
		endpoints: endpoints,
		cache:     cacheService,
		cacheTTL:  cacheTTL,
	}
}

// Gamepasses resolves the universe behind placeID and lists its game
// passes. The listing depends on the universe lookup, so the two stages run
// sequentially.
func (s *placeService) Gamepasses(ctx context.Context, placeID int64) *models.ParseResult {
	result := newResult(placeID)

	key := fmt.Sprintf("place:gamepasses:%d", placeID)
	if s.cached(ctx, key, result) {
		return result
	}

	sess := roblox.NewSession(s.endpoints, "", validation.DefaultTimeout*time.Second)

	var universe universeResponse
	status, err := sess.GetJSON(ctx, fmt.Sprintf("%s/v1/games?universeIds=%d", s.endpoints.Games, placeID), &universe)
	if err != nil {
		result.Error = truncateMessage(err.Error())
		return result
	}
	if status == http.StatusOK && len(universe.Data) > 0 {
		result.PlaceName = &universe.Data[0].Name

		var passes struct {
			Data []models.GamepassInfo `json:"data"`
		}
		status, err = sess.GetJSON(ctx, fmt.Sprintf("%s/v1/games/%d/game-passes?limit=100", s.endpoints.Games, universe.Data[0].ID), &passes)
		if err != nil {
			result.Error = truncateMessage(err.Error())
			return result
		}
		if status == http.StatusOK {
			result.Gamepasses = append(result.Gamepasses, passes.Data...)
		}
	}

	s.store(ctx, key, result)
	return result
}

// Badges fetches the experience name and its badge list. The two lookups
// are independent and run concurrently, each absorbing its own failure.
func (s *placeService) Badges(ctx context.Context, placeID int64) *models.ParseResult {
	result := newResult(placeID)

	key := fmt.Sprintf("place:badges:%d", placeID)
	if s.cached(ctx, key, result) {
		return result
	}

	sess := roblox.NewSession(s.endpoints, "", validation.DefaultTimeout*time.Second)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var universe universeResponse
		if st, err := sess.GetJSON(ctx, fmt.Sprintf("%s/v1/games?universeIds=%d", s.endpoints.Games, placeID), &universe); err == nil && st == http.StatusOK && len(universe.Data) > 0 {
			result.PlaceName = &universe.Data[0].Name
		}
	}()

	go func() {
		defer wg.Done()
		var badges struct {
			Data []models.BadgeInfo `json:"data"`
		}
		st, err := sess.GetJSON(ctx, fmt.Sprintf("%s/v1/universes/%d/badges?limit=100", s.endpoints.Badges, placeID), &badges)
		if err != nil {
			result.Error = truncateMessage(err.Error())
			return
		}
		if st == http.StatusOK {
			result.Badges = append(result.Badges, badges.Data...)
		}
	}()

	wg.Wait()

	s.store(ctx, key, result)
	return result
}

type universeResponse struct {
	Data []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

func newResult(placeID int64) *models.ParseResult {
	return &models.ParseResult{
		PlaceID:    placeID,
		Gamepasses: []models.GamepassInfo{},
		Badges:     []models.BadgeInfo{},
	}
}

func (s *placeService) cached(ctx context.Context, key string, dest *models.ParseResult) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, key, dest) == nil
}

func (s *placeService) store(ctx context.Context, key string, result *models.ParseResult) {
	if s.cache == nil || result.Error != "" {
		return
	}
	if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Failed to cache place metadata")
	}
}

func truncateMessage(msg string) string {
	if len(msg) <= errorEchoLength {
		return msg
	}
	return msg[:errorEchoLength]
}
