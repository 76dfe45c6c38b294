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
	"fmt"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/vraxia/storefront/internal/product/internal/service"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[SaveProductReq](h.SaveProduct))
	g.POST("/publish", ginx.B[PublishProductReq](h.PublishProduct))
	g.POST("/delete", ginx.B[DeleteProductReq](h.DeleteProduct))
}

// SaveProduct 后台保存商品, ID 为 0 则新建
func (h *AdminHandler) SaveProduct(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	p, err := req.Product.toDomain()
	if err != nil {
		return systemErrorResult, err
	}
	id, err := h.svc.SaveProduct(ctx.Request.Context(), p)
	if err != nil {
		return systemErrorResult, fmt.Errorf("保存商品失败: %w", err)
	}
	return ginx.Result{
		Data: SaveProductResp{ID: id},
	}, nil
}

func (h *AdminHandler) PublishProduct(ctx *ginx.Context, req PublishProductReq) (ginx.Result, error) {
	err := h.svc.PublishProduct(ctx.Request.Context(), req.ID, req.OffShelf)
	if err != nil {
		return systemErrorResult, fmt.Errorf("变更商品上架状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) DeleteProduct(ctx *ginx.Context, req DeleteProductReq) (ginx.Result, error) {
	err := h.svc.DeleteProduct(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("删除商品失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
