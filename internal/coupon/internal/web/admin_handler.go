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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/vraxia/storefront/internal/coupon/internal/domain"
	"github.com/vraxia/storefront/internal/coupon/internal/errs"
	"github.com/vraxia/storefront/internal/coupon/internal/service"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/save", ginx.B[SaveCouponReq](h.SaveCoupon))
	g.POST("/list", ginx.B[ListCouponsReq](h.ListCoupons))
}

func (h *AdminHandler) SaveCoupon(ctx *ginx.Context, req SaveCouponReq) (ginx.Result, error) {
	c := req.Coupon.toDomain()
	if c.DiscountPercent < 0 || c.DiscountPercent > 100 {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  "折扣百分比必须在 0-100 之间",
		}, fmt.Errorf("折扣百分比非法: %d", c.DiscountPercent)
	}
	id, err := h.svc.SaveCoupon(ctx.Request.Context(), c)
	if err != nil {
		return systemErrorResult, fmt.Errorf("保存优惠券失败: %w", err)
	}
	return ginx.Result{
		Data: SaveCouponResp{ID: id},
	}, nil
}

func (h *AdminHandler) ListCoupons(ctx *ginx.Context, req ListCouponsReq) (ginx.Result, error) {
	coupons, total, err := h.svc.ListCoupons(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCouponsResp{
			Total: total,
			Coupons: slice.Map(coupons, func(idx int, src domain.Coupon) Coupon {
				return toCouponVO(src)
			}),
		},
	}, nil
}
