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

import "github.com/shopspring/decimal"

// Checkout 下单请求, 金额一律由服务端算, 不信任前端
type Checkout struct {
	Shipping        ShippingInfo
	PaymentProvider PaymentProvider
	PaymentRef      string
	CouponCode      string
}

// Preview 下单前的报价预览, 订单此时尚未创建
type Preview struct {
	Items []OrderItem
	// CouponAccepted 为 false 时 CouponReason 说明原因
	CouponAccepted bool
	CouponReason   string
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	ShippingFee    decimal.Decimal
	Total          decimal.Decimal
}
