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
	"errors"
	"fmt"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/vraxia/storefront/internal/order/internal/domain"
	"github.com/vraxia/storefront/internal/order/internal/service"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.ListAllOrders))
	g.POST("/advance", ginx.B[AdvanceOrderReq](h.AdvanceOrder))
	g.POST("/cancelOrRefund", ginx.B[CancelOrderReq](h.CancelOrRefundOrder))
}

// ListAllOrders 后台订单列表, 不限买家
func (h *AdminHandler) ListAllOrders(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListAllOrders(ctx.Request.Context(), req.Offset, req.Limit)
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

// AdvanceOrder 沿履约链推进一步
func (h *AdminHandler) AdvanceOrder(ctx *ginx.Context, req AdvanceOrderReq) (ginx.Result, error) {
	order, err := h.svc.AdvanceOrder(ctx.Request.Context(), req.OrderSN)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return invalidTransitionResult, err
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("推进订单状态失败: %w", err)
	}
	return ginx.Result{
		Data: OrderStatusResp{
			OrderSN: order.SN,
			Status:  order.Status.String(),
		},
	}, nil
}

func (h *AdminHandler) CancelOrRefundOrder(ctx *ginx.Context, req CancelOrderReq) (ginx.Result, error) {
	order, err := h.svc.CancelOrRefundOrder(ctx.Request.Context(), req.OrderSN)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return invalidTransitionResult, err
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("取消或退款失败: %w", err)
	}
	return ginx.Result{
		Data: OrderStatusResp{
			OrderSN: order.SN,
			Status:  order.Status.String(),
		},
	}, nil
}
