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

package domain

import "time"

type RejectReason uint8

const (
	RejectReasonEmpty RejectReason = iota + 1
	RejectReasonNotFound
	RejectReasonExpired
	RejectReasonLimitReached
)

func (r RejectReason) String() string {
	switch r {
	case RejectReasonEmpty:
		return "empty"
	case RejectReasonNotFound:
		return "not_found"
	case RejectReasonExpired:
		return "expired"
	case RejectReasonLimitReached:
		return "limit_reached"
	default:
		return "unknown"
	}
}

// Coupon 是校验的只读输入。下单成功后的 times_used 回写属于运营侧的记账, 不在这里做。
type Coupon struct {
	ID int64
	// Code 统一存大写
	Code string
	// DiscountPercent 0-100
	DiscountPercent int64
	// ExpiresAt 毫秒时间戳, 0 表示长期有效
	ExpiresAt int64
	// UsageLimit 0 表示不限次数
	UsageLimit int64
	TimesUsed  int64
	Ctime      int64
	Utime      int64
}

// CouponResult 拒绝是正常业务结果, 不是错误
type CouponResult struct {
	Accepted        bool
	DiscountPercent int64
	Reason          RejectReason
}

func Accept(c Coupon) CouponResult {
	return CouponResult{Accepted: true, DiscountPercent: c.DiscountPercent}
}

func Reject(reason RejectReason) CouponResult {
	return CouponResult{Reason: reason}
}

// Validate 先判过期再判用量, 两个检查的先后决定了用户看到的提示, 不能调换
func (c Coupon) Validate(now time.Time) CouponResult {
	if c.ExpiresAt > 0 && now.UnixMilli() > c.ExpiresAt {
		return Reject(RejectReasonExpired)
	}
	if c.UsageLimit > 0 && c.TimesUsed >= c.UsageLimit {
		return Reject(RejectReasonLimitReached)
	}
	return Accept(c)
}
