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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/vraxia/storefront/internal/coupon/internal/domain"
)

const couponExpiration = 10 * time.Minute

var ErrCouponNotCached = errors.New("优惠券不在缓存中")

type CouponCache interface {
	Set(ctx context.Context, c domain.Coupon) error
	Get(ctx context.Context, code string) (domain.Coupon, error)
	Del(ctx context.Context, code string) error
}

type couponCache struct {
	ec ecache.Cache
}

func NewCouponCache(ec ecache.Cache) CouponCache {
	return &couponCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "coupon:",
		},
	}
}

func (c *couponCache) Set(ctx context.Context, cp domain.Coupon) error {
	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("序列化优惠券失败: %w", err)
	}
	return c.ec.Set(ctx, c.key(cp.Code), string(data), couponExpiration)
}

func (c *couponCache) Get(ctx context.Context, code string) (domain.Coupon, error) {
	val := c.ec.Get(ctx, c.key(code))
	if val.KeyNotFound() {
		return domain.Coupon{}, ErrCouponNotCached
	}
	if val.Err != nil {
		return domain.Coupon{}, fmt.Errorf("查询优惠券缓存失败: %w", val.Err)
	}
	var cp domain.Coupon
	if err := json.Unmarshal([]byte(val.Val.(string)), &cp); err != nil {
		return domain.Coupon{}, fmt.Errorf("反序列化优惠券失败: %w", err)
	}
	return cp, nil
}

func (c *couponCache) Del(ctx context.Context, code string) error {
	_, err := c.ec.Delete(ctx, c.key(code))
	return err
}

func (c *couponCache) key(code string) string {
	return fmt.Sprintf("code:%s", code)
}
