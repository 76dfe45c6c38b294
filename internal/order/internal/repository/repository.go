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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/vraxia/storefront/internal/order/internal/domain"
	"github.com/vraxia/storefront/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound  = dao.ErrOrderNotFound
	ErrStatusConflict = dao.ErrStatusConflict
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrdersByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, error)
	TotalOrdersByUID(ctx context.Context, uid int64) (int64, error)
	ListOrders(ctx context.Context, offset int, limit int) ([]domain.Order, error)
	TotalOrders(ctx context.Context) (int64, error)
	// UpdateOrderStatus CAS 更新, 旧状态不匹配返回 ErrStatusConflict
	UpdateOrderStatus(ctx context.Context, id int64, from domain.OrderStatus, to domain.OrderStatus) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.Create(ctx, o.toEntity(order), o.toItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order, items), nil
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order, items), nil
}

func (o *orderRepository) ListOrdersByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, error) {
	orders, err := o.d.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.attachItems(ctx, orders)
}

func (o *orderRepository) TotalOrdersByUID(ctx context.Context, uid int64) (int64, error) {
	return o.d.CountByUID(ctx, uid)
}

func (o *orderRepository) ListOrders(ctx context.Context, offset int, limit int) ([]domain.Order, error) {
	orders, err := o.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.attachItems(ctx, orders)
}

func (o *orderRepository) TotalOrders(ctx context.Context) (int64, error) {
	return o.d.Count(ctx)
}

func (o *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, from domain.OrderStatus, to domain.OrderStatus) error {
	return o.d.UpdateStatus(ctx, id, from.ToUint8(), to.ToUint8())
}

func (o *orderRepository) attachItems(ctx context.Context, orders []dao.Order) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		items, err := o.d.FindItemsByOrderID(ctx, order.Id)
		if err != nil {
			return nil, err
		}
		res = append(res, o.toDomain(order, items))
	}
	return res, nil
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:               order.ID,
		SN:               order.SN,
		BuyerId:          order.BuyerID,
		ShippingFullName: order.Shipping.FullName,
		ShippingEmail:    order.Shipping.Email,
		ShippingPhone:    order.Shipping.Phone,
		ShippingCountry:  order.Shipping.Country,
		ShippingCity:     order.Shipping.City,
		ShippingAddress:  order.Shipping.Address,
		PaymentProvider:  string(order.PaymentProvider),
		PaymentRef:       order.PaymentRef,
		CouponCode:       order.CouponCode,
		Subtotal:         order.Subtotal,
		Discount:         order.Discount,
		ShippingFee:      order.ShippingFee,
		Total:            order.Total,
		Status:           order.Status.ToUint8(),
	}
}

func (o *orderRepository) toItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			VariantID: src.VariantID,
			ProductID: src.ProductID,
			Title:     src.Title,
			UnitPrice: src.UnitPrice,
			Image:     src.Image,
			Selection: sqlx.JsonColumn[map[string]string]{
				Val:   src.Selection,
				Valid: len(src.Selection) > 0,
			},
			Quantity: src.Quantity,
		}
	})
}

func (o *orderRepository) toDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:      order.Id,
		SN:      order.SN,
		BuyerID: order.BuyerId,
		Shipping: domain.ShippingInfo{
			FullName: order.ShippingFullName,
			Email:    order.ShippingEmail,
			Phone:    order.ShippingPhone,
			Country:  order.ShippingCountry,
			City:     order.ShippingCity,
			Address:  order.ShippingAddress,
		},
		PaymentProvider: domain.PaymentProvider(order.PaymentProvider),
		PaymentRef:      order.PaymentRef,
		CouponCode:      order.CouponCode,
		Subtotal:        order.Subtotal,
		Discount:        order.Discount,
		ShippingFee:     order.ShippingFee,
		Total:           order.Total,
		Status:          domain.OrderStatus(order.Status),
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				VariantID: src.VariantID,
				ProductID: src.ProductID,
				Title:     src.Title,
				UnitPrice: src.UnitPrice,
				Image:     src.Image,
				Selection: src.Selection.Val,
				Quantity:  src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
