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
	"github.com/ecodeclub/ekit/slice"
	"github.com/vraxia/storefront/internal/order/internal/domain"
)

// PreviewOrderReq 预览报价, 订单尚未创建
type PreviewOrderReq struct {
	CouponCode string `json:"couponCode,omitempty"`
}

type PreviewOrderResp struct {
	Items          []OrderItem `json:"items"`
	CouponAccepted bool        `json:"couponAccepted"`
	CouponReason   string      `json:"couponReason,omitempty"`
	Subtotal       string      `json:"subtotal"`
	Discount       string      `json:"discount"`
	Shipping       string      `json:"shipping"`
	Total          string      `json:"total"`
}

// CreateOrderReq 下单。RequestID 由前端生成, 用于幂等去重。
type CreateOrderReq struct {
	RequestID       string       `json:"requestID"`
	Shipping        ShippingInfo `json:"shipping"`
	PaymentProvider string       `json:"paymentProvider"`
	PaymentRef      string       `json:"paymentRef,omitempty"`
	CouponCode      string       `json:"couponCode,omitempty"`
}

type CreateOrderResp struct {
	OrderSN string `json:"orderSN"`
}

type RetrieveOrderDetailReq struct {
	OrderSN string `json:"orderSN"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// CancelOrderReq 送达前取消, 送达后退款
type CancelOrderReq struct {
	OrderSN string `json:"orderSN"`
}

// AdvanceOrderReq 后台沿履约链推进一步
type AdvanceOrderReq struct {
	OrderSN string `json:"orderSN"`
}

type OrderStatusResp struct {
	OrderSN string `json:"orderSN"`
	Status  string `json:"status"`
}

type Order struct {
	SN              string       `json:"sn"`
	Shipping        ShippingInfo `json:"shipping"`
	PaymentProvider string       `json:"paymentProvider"`
	PaymentRef      string       `json:"paymentRef,omitempty"`
	CouponCode      string       `json:"couponCode,omitempty"`
	Subtotal        string       `json:"subtotal"`
	Discount        string       `json:"discount"`
	ShippingFee     string       `json:"shippingFee"`
	Total           string       `json:"total"`
	Status          string       `json:"status"`
	Items           []OrderItem  `json:"items"`
	Ctime           int64        `json:"ctime"`
	Utime           int64        `json:"utime"`
}

type OrderItem struct {
	VariantID string            `json:"variantID"`
	ProductID int64             `json:"productID"`
	Title     string            `json:"title"`
	UnitPrice string            `json:"unitPrice"`
	Image     string            `json:"image,omitempty"`
	Selection map[string]string `json:"selection,omitempty"`
	Quantity  int64             `json:"quantity"`
}

type ShippingInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

func toOrderVO(order domain.Order) Order {
	return Order{
		SN: order.SN,
		Shipping: ShippingInfo{
			FullName: order.Shipping.FullName,
			Email:    order.Shipping.Email,
			Phone:    order.Shipping.Phone,
			Country:  order.Shipping.Country,
			City:     order.Shipping.City,
			Address:  order.Shipping.Address,
		},
		PaymentProvider: string(order.PaymentProvider),
		PaymentRef:      order.PaymentRef,
		CouponCode:      order.CouponCode,
		Subtotal:        order.Subtotal.StringFixed(2),
		Discount:        order.Discount.StringFixed(2),
		ShippingFee:     order.ShippingFee.StringFixed(2),
		Total:           order.Total.StringFixed(2),
		Status:          order.Status.String(),
		Items:           toOrderItemVOs(order.Items),
		Ctime:           order.Ctime,
		Utime:           order.Utime,
	}
}

func toOrderVOs(orders []domain.Order) []Order {
	return slice.Map(orders, func(idx int, src domain.Order) Order {
		return toOrderVO(src)
	})
}

func toOrderItemVOs(items []domain.OrderItem) []OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) OrderItem {
		return OrderItem{
			VariantID: src.VariantID,
			ProductID: src.ProductID,
			Title:     src.Title,
			UnitPrice: src.UnitPrice.StringFixed(2),
			Image:     src.Image,
			Selection: src.Selection,
			Quantity:  src.Quantity,
		}
	})
}

func (s ShippingInfo) toDomain() domain.ShippingInfo {
	return domain.ShippingInfo{
		FullName: s.FullName,
		Email:    s.Email,
		Phone:    s.Phone,
		Country:  s.Country,
		City:     s.City,
		Address:  s.Address,
	}
}
