//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/vraxia/storefront/internal/pricing"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		pricing.InitCalculator,
		InitProductModule,
		InitCartModule,
		InitCouponModule,
		InitOrderModule,
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}
