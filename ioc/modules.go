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

package ioc

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/vraxia/storefront/internal/cart"
	"github.com/vraxia/storefront/internal/coupon"
	"github.com/vraxia/storefront/internal/order"
	"github.com/vraxia/storefront/internal/pricing"
	"github.com/vraxia/storefront/internal/product"
)

func InitProductModule(db *egorm.Component) *product.Module {
	m, err := product.InitModule(db)
	if err != nil {
		panic(err)
	}
	return m
}

func InitCartModule(db *egorm.Component, productModule *product.Module) *cart.Module {
	m, err := cart.InitModule(db, productModule.Svc)
	if err != nil {
		panic(err)
	}
	return m
}

func InitCouponModule(db *egorm.Component, ec ecache.Cache) *coupon.Module {
	m, err := coupon.InitModule(db, ec)
	if err != nil {
		panic(err)
	}
	return m
}

func InitOrderModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	cartModule *cart.Module,
	couponModule *coupon.Module,
	calculator *pricing.Calculator) *order.Module {
	m, err := order.InitModule(db, ec, q, cartModule.Svc, couponModule.Svc, calculator)
	if err != nil {
		panic(err)
	}
	return m
}
