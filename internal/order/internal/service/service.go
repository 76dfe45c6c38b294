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

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/vraxia/storefront/internal/cart"
	"github.com/vraxia/storefront/internal/coupon"
	"github.com/vraxia/storefront/internal/order/internal/domain"
	"github.com/vraxia/storefront/internal/order/internal/event"
	"github.com/vraxia/storefront/internal/order/internal/repository"
	"github.com/vraxia/storefront/internal/pkg/sequencenumber"
	"github.com/vraxia/storefront/internal/pricing"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// PreviewOrder 报价预览, 不落库
	PreviewOrder(ctx context.Context, uid int64, couponCode string) (domain.Preview, error)
	// PlaceOrder 下单: 校验优惠券、服务端计价、快照购物车、清空购物车
	PlaceOrder(ctx context.Context, uid int64, checkout domain.Checkout) (domain.Order, error)
	FindOrder(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	ListOrdersByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, int64, error)
	ListAllOrders(ctx context.Context, offset int, limit int) ([]domain.Order, int64, error)
	// AdvanceOrder 沿履约链单步推进
	AdvanceOrder(ctx context.Context, sn string) (domain.Order, error)
	// CancelOrRefundOrder 送达前取消, 送达后退款
	CancelOrRefundOrder(ctx context.Context, sn string) (domain.Order, error)
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	couponSvc coupon.Service,
	calculator *pricing.Calculator,
	snGenerator *sequencenumber.Generator,
	producer event.OrderStatusChangedProducer) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		couponSvc:   couponSvc,
		calculator:  calculator,
		snGenerator: snGenerator,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	couponSvc   coupon.Service
	calculator  *pricing.Calculator
	snGenerator *sequencenumber.Generator
	producer    event.OrderStatusChangedProducer
	logger      *elog.Component
}

func (s *service) PreviewOrder(ctx context.Context, uid int64, couponCode string) (domain.Preview, error) {
	c, err := s.cartSvc.FindCart(ctx, uid)
	if err != nil {
		return domain.Preview{}, fmt.Errorf("查找购物车失败: %w", err)
	}
	res, err := s.couponSvc.Validate(ctx, couponCode, time.Now())
	if err != nil {
		return domain.Preview{}, err
	}
	var discountPercent int64
	if res.Accepted {
		discountPercent = res.DiscountPercent
	}
	quote := s.calculator.Quote(c.Subtotal(), discountPercent)
	return domain.Preview{
		Items:          s.snapshotItems(c),
		CouponAccepted: res.Accepted,
		CouponReason:   res.Reason.String(),
		Subtotal:       quote.Subtotal,
		Discount:       quote.Discount,
		ShippingFee:    quote.Shipping,
		Total:          quote.Total,
	}, nil
}

func (s *service) PlaceOrder(ctx context.Context, uid int64, checkout domain.Checkout) (domain.Order, error) {
	c, err := s.cartSvc.FindCart(ctx, uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找购物车失败: %w", err)
	}
	if len(c.Items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}
	if !checkout.PaymentProvider.Valid() {
		return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrInvalidPayment, checkout.PaymentProvider)
	}

	couponCode := strings.ToUpper(strings.TrimSpace(checkout.CouponCode))
	res, err := s.couponSvc.Validate(ctx, couponCode, time.Now())
	if err != nil {
		return domain.Order{}, err
	}
	var discountPercent int64
	switch {
	case res.Accepted:
		discountPercent = res.DiscountPercent
		// TODO: 下单成功后回写优惠券 times_used, 等运营侧确认计数口径后实现
	case res.Reason == coupon.RejectReasonEmpty:
		// 没填码, 按无优惠下单
		couponCode = ""
	default:
		return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrCouponRejected, res.Reason)
	}

	quote := s.calculator.Quote(c.Subtotal(), discountPercent)
	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}

	order, err := s.repo.CreateOrder(ctx, domain.Order{
		SN:              sn,
		BuyerID:         uid,
		Items:           s.snapshotItems(c),
		Shipping:        checkout.Shipping,
		PaymentProvider: checkout.PaymentProvider,
		PaymentRef:      checkout.PaymentRef,
		CouponCode:      couponCode,
		Subtotal:        quote.Subtotal,
		Discount:        quote.Discount,
		ShippingFee:     quote.Shipping,
		Total:           quote.Total,
		Status:          domain.StatusPending,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}

	// 订单已落库, 清空购物车失败只记日志
	if err = s.cartSvc.Clear(ctx, uid); err != nil {
		s.logger.Error("下单后清空购物车失败",
			elog.Int64("uid", uid),
			elog.String("orderSN", order.SN),
			elog.FieldErr(err))
	}
	s.produceStatusEvent(ctx, order.SN, order.BuyerID, "", order.Status)
	return order, nil
}

func (s *service) snapshotItems(c cart.Cart) []domain.OrderItem {
	return slice.Map(c.Items, func(idx int, src cart.LineItem) domain.OrderItem {
		return domain.OrderItem{
			VariantID: src.VariantID,
			ProductID: src.ProductID,
			Title:     src.Title,
			UnitPrice: src.UnitPrice,
			Image:     src.Image,
			Selection: src.Selection,
			Quantity:  src.Quantity,
		}
	})
}

func (s *service) FindOrder(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	return s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) ListOrdersByUID(ctx context.Context, uid int64, offset int, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrdersByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrdersByUID(ctx, uid)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) ListAllOrders(ctx context.Context, offset int, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) AdvanceOrder(ctx context.Context, sn string) (domain.Order, error) {
	return s.transition(ctx, sn, domain.OrderStatus.Next)
}

func (s *service) CancelOrRefundOrder(ctx context.Context, sn string) (domain.Order, error) {
	return s.transition(ctx, sn, domain.OrderStatus.CancelOrRefundTarget)
}

// transition 先在领域层算出目标状态, 再用 CAS 落库。被并发抢先的更新
// 一律按非法流转报出去, 订单本身不会被改动。
func (s *service) transition(ctx context.Context, sn string,
	target func(domain.OrderStatus) (domain.OrderStatus, error)) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单失败: %w", err)
	}
	to, err := target(order.Status)
	if err != nil {
		return domain.Order{}, err
	}
	err = s.repo.UpdateOrderStatus(ctx, order.ID, order.Status, to)
	if errors.Is(err, repository.ErrStatusConflict) {
		return domain.Order{}, fmt.Errorf("%w: 订单状态已被并发变更", domain.ErrInvalidTransition)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("更新订单状态失败: %w", err)
	}
	s.produceStatusEvent(ctx, order.SN, order.BuyerID, order.Status.String(), to)
	order.Status = to
	return order, nil
}

func (s *service) produceStatusEvent(ctx context.Context, sn string, buyerID int64, old string, to domain.OrderStatus) {
	evt := event.OrderStatusChangedEvent{
		OrderSN:   sn,
		BuyerID:   buyerID,
		OldStatus: old,
		NewStatus: to.String(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单状态事件失败",
			elog.String("orderSN", sn),
			elog.Any("event", evt),
			elog.FieldErr(err))
	}
}
