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

package coupon

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/vraxia/storefront/internal/coupon/internal/domain"
	"github.com/vraxia/storefront/internal/coupon/internal/repository/dao"
	"github.com/vraxia/storefront/internal/coupon/internal/service"
	"github.com/vraxia/storefront/internal/coupon/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Coupon       = domain.Coupon
	CouponResult = domain.CouponResult
	RejectReason = domain.RejectReason
)

const (
	RejectReasonEmpty        = domain.RejectReasonEmpty
	RejectReasonNotFound     = domain.RejectReasonNotFound
	RejectReasonExpired      = domain.RejectReasonExpired
	RejectReasonLimitReached = domain.RejectReasonLimitReached
)

type Module struct {
	Svc      Service
	AdminHdl *AdminHandler
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CouponDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCouponGORMDAO(db)
}
