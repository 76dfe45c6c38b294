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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/vraxia/storefront/internal/coupon/internal/domain"
	"github.com/vraxia/storefront/internal/coupon/internal/repository/cache"
	"github.com/vraxia/storefront/internal/coupon/internal/repository/dao"
)

var ErrCouponNotFound = dao.ErrCouponNotFound

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Coupon, error)
	Count(ctx context.Context) (int64, error)
}

type couponRepository struct {
	d      dao.CouponDAO
	c      cache.CouponCache
	logger *elog.Component
}

func NewCouponRepository(d dao.CouponDAO, c cache.CouponCache) CouponRepository {
	return &couponRepository{
		d:      d,
		c:      c,
		logger: elog.DefaultLogger,
	}
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	cp, err := r.c.Get(ctx, code)
	if err == nil {
		return cp, nil
	}
	entity, err := r.d.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	cp = r.toDomain(entity)
	// 缓存写失败不影响主流程
	if err = r.c.Set(ctx, cp); err != nil {
		r.logger.Warn("回填优惠券缓存失败",
			elog.String("code", code),
			elog.FieldErr(err))
	}
	return cp, nil
}

func (r *couponRepository) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	id, err := r.d.Save(ctx, r.toEntity(c))
	if err != nil {
		return 0, err
	}
	// 改动要立刻可见, 直接淘汰缓存
	if err = r.c.Del(ctx, c.Code); err != nil {
		r.logger.Warn("淘汰优惠券缓存失败",
			elog.String("code", c.Code),
			elog.FieldErr(err))
	}
	return id, nil
}

func (r *couponRepository) List(ctx context.Context, offset int, limit int) ([]domain.Coupon, error) {
	entities, err := r.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	}), nil
}

func (r *couponRepository) Count(ctx context.Context) (int64, error) {
	return r.d.Count(ctx)
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	var limit int64
	if c.UsageLimit.Valid {
		limit = c.UsageLimit.Int64
	}
	return domain.Coupon{
		ID:              c.Id,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		ExpiresAt:       c.ExpiresAt,
		UsageLimit:      limit,
		TimesUsed:       c.TimesUsed,
		Ctime:           c.Ctime,
		Utime:           c.Utime,
	}
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:              c.ID,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		ExpiresAt:       c.ExpiresAt,
		UsageLimit: sql.NullInt64{
			Int64: c.UsageLimit,
			Valid: c.UsageLimit > 0,
		},
		TimesUsed: c.TimesUsed,
	}
}
