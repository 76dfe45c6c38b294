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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vraxia/storefront/internal/coupon/internal/domain"
	"github.com/vraxia/storefront/internal/coupon/internal/repository"
)

type memoryCouponRepository struct {
	coupons map[string]domain.Coupon
	lookups int
}

func (m *memoryCouponRepository) FindByCode(_ context.Context, code string) (domain.Coupon, error) {
	m.lookups++
	c, ok := m.coupons[code]
	if !ok {
		return domain.Coupon{}, repository.ErrCouponNotFound
	}
	return c, nil
}

func (m *memoryCouponRepository) Save(_ context.Context, c domain.Coupon) (int64, error) {
	if m.coupons == nil {
		m.coupons = make(map[string]domain.Coupon)
	}
	m.coupons[c.Code] = c
	return 1, nil
}

func (m *memoryCouponRepository) List(_ context.Context, _ int, _ int) ([]domain.Coupon, error) {
	return nil, nil
}

func (m *memoryCouponRepository) Count(_ context.Context) (int64, error) {
	return int64(len(m.coupons)), nil
}

func TestService_Validate(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	repo := &memoryCouponRepository{
		coupons: map[string]domain.Coupon{
			"SUMMER20": {
				ID:              1,
				Code:            "SUMMER20",
				DiscountPercent: 20,
				ExpiresAt:       now.Add(30 * 24 * time.Hour).UnixMilli(),
				UsageLimit:      100,
				TimesUsed:       5,
			},
			"EXPIRED15": {
				ID:              2,
				Code:            "EXPIRED15",
				DiscountPercent: 15,
				ExpiresAt:       now.Add(-time.Hour).UnixMilli(),
			},
			"DRAINED10": {
				ID:              3,
				Code:            "DRAINED10",
				DiscountPercent: 10,
				ExpiresAt:       now.Add(time.Hour).UnixMilli(),
				UsageLimit:      10,
				TimesUsed:       10,
			},
		},
	}
	svc := NewService(repo)

	testCases := []struct {
		name string
		code string
		want domain.CouponResult
	}{
		{
			name: "有效",
			code: "SUMMER20",
			want: domain.CouponResult{Accepted: true, DiscountPercent: 20},
		},
		{
			// 归一化: 去空白并大写
			name: "小写带空白_仍命中",
			code: "  summer20 ",
			want: domain.CouponResult{Accepted: true, DiscountPercent: 20},
		},
		{
			name: "查无此码",
			code: "NOPE",
			want: domain.CouponResult{Reason: domain.RejectReasonNotFound},
		},
		{
			name: "已过期",
			code: "EXPIRED15",
			want: domain.CouponResult{Reason: domain.RejectReasonExpired},
		},
		{
			name: "用量到上限",
			code: "DRAINED10",
			want: domain.CouponResult{Reason: domain.RejectReasonLimitReached},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Validate(context.Background(), tc.code, now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestService_Validate_EmptyCode(t *testing.T) {
	repo := &memoryCouponRepository{}
	svc := NewService(repo)
	for _, code := range []string{"", "   ", "\t"} {
		res, err := svc.Validate(context.Background(), code, time.Now())
		require.NoError(t, err)
		assert.Equal(t, domain.Reject(domain.RejectReasonEmpty), res)
	}
	// 空码直接判空, 不应触发查询
	assert.Equal(t, 0, repo.lookups)
}

func TestService_SaveCoupon_NormalizesCode(t *testing.T) {
	repo := &memoryCouponRepository{}
	svc := NewService(repo)
	_, err := svc.SaveCoupon(context.Background(), domain.Coupon{
		Code:            " winter5 ",
		DiscountPercent: 5,
	})
	require.NoError(t, err)
	_, ok := repo.coupons["WINTER5"]
	assert.True(t, ok)
}
