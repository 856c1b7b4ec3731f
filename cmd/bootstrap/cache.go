package bootstrap

import (
	"rehearsal-rooms/internal/pkg/config"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCampusCache,
	),
)

func NewCampusCache(cfg config.Config) *gocache.Cache {
	return gocache.New(cfg.Cache.CampusTTL, cfg.Cache.CampusCleanup)
}
