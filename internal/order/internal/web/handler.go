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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vraxia/storefront/internal/order/internal/domain"
	"github.com/vraxia/storefront/internal/order/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/preview", ginx.BS[PreviewOrderReq](h.PreviewOrder))
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// PreviewOrder 基于当前购物车出一份报价, 优惠券拒绝原因内联在响应里
func (h *Handler) PreviewOrder(ctx *ginx.Context, req PreviewOrderReq, sess session.Session) (ginx.Result, error) {
	preview, err := h.svc.PreviewOrder(ctx.Request.Context(), sess.Claims().Uid, req.CouponCode)
	if err != nil {
		return systemErrorResult, fmt.Errorf("预览订单失败: %w", err)
	}
	return ginx.Result{
		Data: PreviewOrderResp{
			Items:          toOrderItemVOs(preview.Items),
			CouponAccepted: preview.CouponAccepted,
			CouponReason:   preview.CouponReason,
			Subtotal:       preview.Subtotal.StringFixed(2),
			Discount:       preview.Discount.StringFixed(2),
			Shipping:       preview.ShippingFee.StringFixed(2),
			Total:          preview.Total.StringFixed(2),
		},
	}, nil
}

// CreateOrder 下单, 用前端生成的 RequestID 做幂等去重
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}
	// 支付凭证由前端透传, 测试渠道可能不带, 兜底生成一个
	paymentRef := req.PaymentRef
	if paymentRef == "" {
		paymentRef = fmt.Sprintf("ref_%s", uuid.New().String())
	}
	order, err := h.svc.PlaceOrder(ctx.Request.Context(), sess.Claims().Uid, domain.Checkout{
		Shipping:        req.Shipping.toDomain(),
		PaymentProvider: domain.PaymentProvider(req.PaymentProvider),
		PaymentRef:      paymentRef,
		CouponCode:      req.CouponCode,
	})
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return emptyCartResult, err
	case errors.Is(err, domain.ErrInvalidPayment):
		return invalidPaymentResult, err
	case errors.Is(err, domain.ErrCouponRejected):
		return couponRejectedResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{
		Data: CreateOrderResp{OrderSN: order.SN},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

// ListOrders 分页查询当前用户的订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrdersByUID(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total:  total,
			Orders: toOrderVOs(orders),
		},
	}, nil
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		return orderNotFoundResult, fmt.Errorf("订单未找到: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

// CancelOrder 先确认归属再操作, 不能动别人的订单
func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		return orderNotFoundResult, fmt.Errorf("订单未找到: %w", err)
	}
	order, err = h.svc.CancelOrRefundOrder(ctx.Request.Context(), order.SN)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return invalidTransitionResult, err
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{
		Data: OrderStatusResp{
			OrderSN: order.SN,
			Status:  order.Status.String(),
		},
	}, nil
}
