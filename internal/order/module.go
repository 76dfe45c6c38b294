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

package order

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/vraxia/storefront/internal/order/internal/domain"
	"github.com/vraxia/storefront/internal/order/internal/event"
	"github.com/vraxia/storefront/internal/order/internal/repository/dao"
	"github.com/vraxia/storefront/internal/order/internal/service"
	"github.com/vraxia/storefront/internal/order/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Order        = domain.Order
	OrderItem    = domain.OrderItem
	OrderStatus  = domain.OrderStatus
	Checkout     = domain.Checkout
	ShippingInfo = domain.ShippingInfo

	OrderStatusChangedEvent = event.OrderStatusChangedEvent
)

const (
	StatusPending    = domain.StatusPending
	StatusProcessing = domain.StatusProcessing
	StatusShipped    = domain.StatusShipped
	StatusDelivered  = domain.StatusDelivered
	StatusCancelled  = domain.StatusCancelled
	StatusRefunded   = domain.StatusRefunded
)

var (
	ErrInvalidTransition = domain.ErrInvalidTransition
	ErrEmptyCart         = domain.ErrEmptyCart
	ErrCouponRejected    = domain.ErrCouponRejected
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
