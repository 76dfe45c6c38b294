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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vraxia/storefront/internal/coupon/internal/domain"
	"github.com/vraxia/storefront/internal/coupon/internal/repository"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// Validate 校验顺序固定: 空码、查无此码、已过期、用量到上限。
	// 拒绝是业务结果而不是 error, error 只代表基础设施故障。
	Validate(ctx context.Context, code string, now time.Time) (domain.CouponResult, error)
	SaveCoupon(ctx context.Context, c domain.Coupon) (int64, error)
	ListCoupons(ctx context.Context, offset int, limit int) ([]domain.Coupon, int64, error)
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CouponRepository
}

func (s *service) Validate(ctx context.Context, code string, now time.Time) (domain.CouponResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		// 没填码不算失败, 调用方按"未使用优惠券"处理
		return domain.Reject(domain.RejectReasonEmpty), nil
	}
	c, err := s.repo.FindByCode(ctx, code)
	if errors.Is(err, repository.ErrCouponNotFound) {
		return domain.Reject(domain.RejectReasonNotFound), nil
	}
	if err != nil {
		return domain.CouponResult{}, fmt.Errorf("查找优惠券失败: %w", err)
	}
	return c.Validate(now), nil
}

func (s *service) SaveCoupon(ctx context.Context, c domain.Coupon) (int64, error) {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	return s.repo.Save(ctx, c)
}

func (s *service) ListCoupons(ctx context.Context, offset int, limit int) ([]domain.Coupon, int64, error) {
	var (
		eg      errgroup.Group
		coupons []domain.Coupon
		total   int64
	)
	eg.Go(func() error {
		var err error
		coupons, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, fmt.Errorf("查询优惠券列表失败: %w", err)
	}
	return coupons, total, nil
}
