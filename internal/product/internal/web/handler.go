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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/vraxia/storefront/internal/product/internal/domain"
	"github.com/vraxia/storefront/internal/product/internal/repository/dao"
	"github.com/vraxia/storefront/internal/product/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/detail", ginx.B[ProductDetailReq](h.RetrieveProductDetail))
	g.POST("/list", ginx.B[ListProductsReq](h.ListProducts))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// RetrieveProductDetail 商品详情, 只返回上架商品
func (h *Handler) RetrieveProductDetail(ctx *ginx.Context, req ProductDetailReq) (ginx.Result, error) {
	p, err := h.svc.FindProductByID(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, dao.ErrProductNotFound) {
			return productNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("查找商品失败: %w", err)
	}
	return ginx.Result{
		Data: ProductDetailResp{Product: toProductVO(p)},
	}, nil
}

// ListProducts 分页查询上架商品, 按创建时间倒序
func (h *Handler) ListProducts(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	ps, total, err := h.svc.ListProducts(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProductsResp{
			Total: total,
			Products: slice.Map(ps, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}
