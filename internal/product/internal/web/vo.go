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
	"github.com/shopspring/decimal"
	"github.com/vraxia/storefront/internal/product/internal/domain"
)

func parsePrice(val string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("商品价格非法: %w", err)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("商品价格不能为负数: %s", val)
	}
	return price, nil
}

// ProductDetailReq 获取商品详情
type ProductDetailReq struct {
	ID int64 `json:"id"`
}

type ProductDetailResp struct {
	Product Product `json:"product"`
}

// ListProductsReq 分页查询上架商品
type ListProductsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

// SaveProductReq 后台新建或更新商品
type SaveProductReq struct {
	Product Product `json:"product"`
}

type SaveProductResp struct {
	ID int64 `json:"id"`
}

// PublishProductReq 后台上下架商品
type PublishProductReq struct {
	ID       int64 `json:"id"`
	OffShelf bool  `json:"offShelf"`
}

// DeleteProductReq 后台删除商品
type DeleteProductReq struct {
	ID int64 `json:"id"`
}

type Product struct {
	ID           int64         `json:"id"`
	SN           string        `json:"sn"`
	Title        string        `json:"title"`
	Desc         string        `json:"desc"`
	Price        string        `json:"price"`
	Stock        int64         `json:"stock"`
	Images       []string      `json:"images,omitempty"`
	Categories   []string      `json:"categories,omitempty"`
	OptionGroups []OptionGroup `json:"optionGroups,omitempty"`
	Status       uint8         `json:"status,omitempty"`
}

type OptionGroup struct {
	Name   string        `json:"name"`
	Kind   uint8         `json:"kind"`
	Values []OptionValue `json:"values"`
}

type OptionValue struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

func toProductVO(p domain.Product) Product {
	return Product{
		ID:         p.ID,
		SN:         p.SN,
		Title:      p.Title,
		Desc:       p.Description,
		Price:      p.Price.StringFixed(2),
		Stock:      p.Stock,
		Images:     p.Images,
		Categories: p.Categories,
		OptionGroups: slice.Map(p.OptionGroups, func(idx int, src domain.OptionGroup) OptionGroup {
			return OptionGroup{
				Name: src.Name,
				Kind: src.Kind.ToUint8(),
				Values: slice.Map(src.Values, func(idx int, v domain.OptionValue) OptionValue {
					return OptionValue{Label: v.Label, Color: v.Color}
				}),
			}
		}),
		Status: p.Status.ToUint8(),
	}
}

func (p Product) toDomain() (domain.Product, error) {
	price, err := parsePrice(p.Price)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		ID:          p.ID,
		SN:          p.SN,
		Title:       p.Title,
		Description: p.Desc,
		Price:       price,
		Stock:       p.Stock,
		Images:      p.Images,
		Categories:  p.Categories,
		OptionGroups: slice.Map(p.OptionGroups, func(idx int, src OptionGroup) domain.OptionGroup {
			return domain.OptionGroup{
				Name: src.Name,
				Kind: domain.OptionKind(src.Kind),
				Values: slice.Map(src.Values, func(idx int, v OptionValue) domain.OptionValue {
					return domain.OptionValue{Label: v.Label, Color: v.Color}
				}),
			}
		}),
		Status: domain.Status(p.Status),
	}, nil
}
