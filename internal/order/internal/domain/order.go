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

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition = errors.New("订单当前状态不允许该操作")
	ErrEmptyCart         = errors.New("购物车为空, 无法下单")
	ErrCouponRejected    = errors.New("优惠券不可用")
	ErrInvalidPayment    = errors.New("支付方式非法")
)

type OrderStatus uint8

const (
	StatusPending    OrderStatus = 1
	StatusProcessing OrderStatus = 2
	StatusShipped    OrderStatus = 3
	StatusDelivered  OrderStatus = 4
	StatusCancelled  OrderStatus = 5
	StatusRefunded   OrderStatus = 6
)

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusShipped:
		return "shipped"
	case StatusDelivered:
		return "delivered"
	case StatusCancelled:
		return "cancelled"
	case StatusRefunded:
		return "refunded"
	default:
		return "unknown"
	}
}

// Next 只允许沿履约链单步推进: pending → processing → shipped → delivered。
// 跳步不开放, 后台纠错也走逐步推进。
func (s OrderStatus) Next() (OrderStatus, error) {
	switch s {
	case StatusPending:
		return StatusProcessing, nil
	case StatusProcessing:
		return StatusShipped, nil
	case StatusShipped:
		return StatusDelivered, nil
	default:
		return 0, fmt.Errorf("%w: %s 无法继续推进", ErrInvalidTransition, s)
	}
}

// CancelOrRefundTarget 送达前是取消, 送达后是退款, 终态不再动
func (s OrderStatus) CancelOrRefundTarget() (OrderStatus, error) {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped:
		return StatusCancelled, nil
	case StatusDelivered:
		return StatusRefunded, nil
	default:
		return 0, fmt.Errorf("%w: %s 无法取消或退款", ErrInvalidTransition, s)
	}
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

type PaymentProvider string

const (
	PaymentProviderStripe    PaymentProvider = "stripe"
	PaymentProviderPaypal    PaymentProvider = "paypal"
	PaymentProviderGooglePay PaymentProvider = "google_pay"
	PaymentProviderApplePay  PaymentProvider = "apple_pay"
)

func (p PaymentProvider) Valid() bool {
	switch p {
	case PaymentProviderStripe, PaymentProviderPaypal,
		PaymentProviderGooglePay, PaymentProviderApplePay:
		return true
	default:
		return false
	}
}

// Order 下单即快照: Items 和金额在创建后不再改动, 之后只有 Status 会变
type Order struct {
	ID              int64
	SN              string
	BuyerID         int64
	Items           []OrderItem
	Shipping        ShippingInfo
	PaymentProvider PaymentProvider
	// PaymentRef 调用方给的支付凭证号, 本系统不对接支付网关
	PaymentRef string
	CouponCode string
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	// ShippingFee 运费
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
	Status      OrderStatus
	Ctime       int64
	Utime       int64
}

// OrderItem 下单时从购物车拷贝的行项快照
type OrderItem struct {
	VariantID string
	ProductID int64
	Title     string
	UnitPrice decimal.Decimal
	Image     string
	Selection map[string]string
	Quantity  int64
}

type ShippingInfo struct {
	FullName string
	Email    string
	Phone    string
	Country  string
	City     string
	Address  string
}
