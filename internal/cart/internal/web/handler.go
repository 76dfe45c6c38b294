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
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/vraxia/storefront/internal/cart/internal/domain"
	"github.com/vraxia/storefront/internal/cart/internal/service"
	"github.com/vraxia/storefront/internal/product"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddItemReq](h.AddItem))
	g.POST("/update", ginx.BS[UpdateQuantityReq](h.UpdateQuantity))
	g.POST("/remove", ginx.BS[RemoveItemReq](h.RemoveItem))
	g.POST("/clear", ginx.S(h.Clear))
	g.POST("/detail", ginx.S(h.RetrieveCart))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// AddItem 加购。数量非法和商品下架是常见业务结果, 返回业务码而非系统错误。
func (h *Handler) AddItem(ctx *ginx.Context, req AddItemReq, sess session.Session) (ginx.Result, error) {
	item, err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid,
		req.ProductID, req.Selection, req.Quantity)
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return invalidQuantityResult, nil
	case errors.Is(err, product.ErrProductNotFound):
		return productNotFoundResult, nil
	case err != nil:
		return systemErrorResult, fmt.Errorf("加入购物车失败: %w", err)
	}
	return ginx.Result{
		Data: AddItemResp{Item: toLineItemVO(item)},
	}, nil
}

func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateQuantityReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateQuantity(ctx.Request.Context(), sess.Claims().Uid, req.VariantID, req.Quantity)
	if err != nil {
		return systemErrorResult, fmt.Errorf("更新购物车数量失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RemoveItem(ctx *ginx.Context, req RemoveItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, req.VariantID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("移除购物车行项失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Clear(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("清空购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RetrieveCart(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.FindCart(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询购物车失败: %w", err)
	}
	return ginx.Result{
		Data: toCartVO(cart),
	}, nil
}
