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

package cart

import (
	"sync"
	"time"

	"github.com/ego-component/egorm"
	"github.com/vraxia/storefront/internal/cart/internal/domain"
	"github.com/vraxia/storefront/internal/cart/internal/job"
	"github.com/vraxia/storefront/internal/cart/internal/repository/dao"
	"github.com/vraxia/storefront/internal/cart/internal/service"
	"github.com/vraxia/storefront/internal/cart/internal/web"
)

type (
	Handler   = web.Handler
	Service   = service.Service
	Cart      = domain.Cart
	LineItem  = domain.LineItem
	Selection = domain.Selection

	CloseAbandonedCartsJob = job.CloseAbandonedCartsJob
)

var ErrInvalidQuantity = domain.ErrInvalidQuantity

func NewCloseAbandonedCartsJob(svc Service, idleFor, timeout time.Duration) *CloseAbandonedCartsJob {
	return job.NewCloseAbandonedCartsJob(svc, idleFor, timeout)
}

// VariantID 计算行项的变体标识: 商品ID + 按选项名排序的 name:value 对
func VariantID(productID int64, selection Selection) string {
	return domain.VariantID(productID, selection)
}

type Module struct {
	Svc Service
	Hdl *Handler
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CartDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCartGORMDAO(db)
}
