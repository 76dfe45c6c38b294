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
	"github.com/vraxia/storefront/internal/cart/internal/domain"
)

// AddItemReq 加入购物车
type AddItemReq struct {
	ProductID int64             `json:"productID"`
	Selection map[string]string `json:"selection,omitempty"`
	Quantity  int64             `json:"quantity"`
}

type AddItemResp struct {
	Item LineItem `json:"item"`
}

// UpdateQuantityReq 修改行项数量, 0 或负数等价于移除
type UpdateQuantityReq struct {
	VariantID string `json:"variantID"`
	Quantity  int64  `json:"quantity"`
}

// RemoveItemReq 移除行项
type RemoveItemReq struct {
	VariantID string `json:"variantID"`
}

// CartResp 购物车详情及汇总
type CartResp struct {
	Items     []LineItem `json:"items,omitempty"`
	Subtotal  string     `json:"subtotal"`
	ItemCount int64      `json:"itemCount"`
}

type LineItem struct {
	VariantID string            `json:"variantID"`
	ProductID int64             `json:"productID"`
	Title     string            `json:"title"`
	UnitPrice string            `json:"unitPrice"`
	Image     string            `json:"image,omitempty"`
	Selection map[string]string `json:"selection,omitempty"`
	Quantity  int64             `json:"quantity"`
}

func toLineItemVO(item domain.LineItem) LineItem {
	return LineItem{
		VariantID: item.VariantID,
		ProductID: item.ProductID,
		Title:     item.Title,
		UnitPrice: item.UnitPrice.StringFixed(2),
		Image:     item.Image,
		Selection: item.Selection,
		Quantity:  item.Quantity,
	}
}

func toCartVO(cart domain.Cart) CartResp {
	return CartResp{
		Items: slice.Map(cart.Items, func(idx int, src domain.LineItem) LineItem {
			return toLineItemVO(src)
		}),
		Subtotal:  cart.Subtotal().StringFixed(2),
		ItemCount: cart.ItemCount(),
	}
}
