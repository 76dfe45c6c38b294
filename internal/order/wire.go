// Copyright 2025 vraxia
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package order

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/vraxia/storefront/internal/cart"
	"github.com/vraxia/storefront/internal/coupon"
	"github.com/vraxia/storefront/internal/order/internal/event"
	"github.com/vraxia/storefront/internal/order/internal/repository"
	"github.com/vraxia/storefront/internal/order/internal/service"
	"github.com/vraxia/storefront/internal/order/internal/web"
	"github.com/vraxia/storefront/internal/pkg/sequencenumber"
	"github.com/vraxia/storefront/internal/pricing"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	repository.NewRepository,
	service.NewService)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	cartSvc cart.Service,
	couponSvc coupon.Service,
	calculator *pricing.Calculator) (*Module, error) {
	wire.Build(
		ServiceSet,
		sequencenumber.NewGenerator,
		event.NewOrderStatusChangedProducer,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}
