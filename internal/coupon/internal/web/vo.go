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

package web

import (
	"github.com/vraxia/storefront/internal/coupon/internal/domain"
)

// SaveCouponReq 后台新建或更新优惠券, 以 code 为准
type SaveCouponReq struct {
	Coupon Coupon `json:"coupon"`
}

type SaveCouponResp struct {
	ID int64 `json:"id"`
}

// ListCouponsReq 后台分页查询
type ListCouponsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListCouponsResp struct {
	Total   int64    `json:"total,omitempty"`
	Coupons []Coupon `json:"coupons,omitempty"`
}

type Coupon struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	DiscountPercent int64  `json:"discountPercent"`
	// 毫秒时间戳, 0 表示长期有效
	ExpiresAt int64 `json:"expiresAt,omitempty"`
	// 0 表示不限次数
	UsageLimit int64 `json:"usageLimit,omitempty"`
	TimesUsed  int64 `json:"timesUsed,omitempty"`
}

func toCouponVO(c domain.Coupon) Coupon {
	return Coupon{
		ID:              c.ID,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		ExpiresAt:       c.ExpiresAt,
		UsageLimit:      c.UsageLimit,
		TimesUsed:       c.TimesUsed,
	}
}

func (c Coupon) toDomain() domain.Coupon {
	return domain.Coupon{
		ID:              c.ID,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		ExpiresAt:       c.ExpiresAt,
		UsageLimit:      c.UsageLimit,
	}
}
