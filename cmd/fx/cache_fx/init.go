package cache_fx

import (
	"go.uber.org/fx"
	"murmur/internal/infra"
	"murmur/pkg/cache"
)

var Module = fx.Provide(provideCache)

func provideCache() cache.Store {
	return infra.InitCache()
}
