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
	"github.com/vraxia/storefront/internal/cart/internal/domain"
	"github.com/vraxia/storefront/internal/cart/internal/repository/dao"
)

type CartRepository interface {
	AddItem(ctx context.Context, uid int64, item domain.LineItem) error
	UpdateQuantity(ctx context.Context, uid int64, variantID string, quantity int64) error
	RemoveItem(ctx context.Context, uid int64, variantID string) error
	Clear(ctx context.Context, uid int64) error
	FindCart(ctx context.Context, uid int64) (domain.Cart, error)
	RemoveIdleBefore(ctx context.Context, utime int64) (int64, error)
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{d: d}
}

type cartRepository struct {
	d dao.CartDAO
}

func (r *cartRepository) AddItem(ctx context.Context, uid int64, item domain.LineItem) error {
	return r.d.Upsert(ctx, dao.CartItem{
		Uid:       uid,
		VariantID: item.VariantID,
		ProductID: item.ProductID,
		Title:     item.Title,
		UnitPrice: item.UnitPrice,
		Image:     item.Image,
		Selection: sqlx.JsonColumn[map[string]string]{Val: item.Selection, Valid: true},
		Quantity:  item.Quantity,
	})
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, uid int64, variantID string, quantity int64) error {
	return r.d.UpdateQuantity(ctx, uid, variantID, quantity)
}

func (r *cartRepository) RemoveItem(ctx context.Context, uid int64, variantID string) error {
	return r.d.Delete(ctx, uid, variantID)
}

func (r *cartRepository) Clear(ctx context.Context, uid int64) error {
	return r.d.DeleteByUID(ctx, uid)
}

func (r *cartRepository) FindCart(ctx context.Context, uid int64) (domain.Cart, error) {
	items, err := r.d.FindByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{
		Uid: uid,
		Items: slice.Map(items, func(idx int, src dao.CartItem) domain.LineItem {
			return domain.LineItem{
				VariantID: src.VariantID,
				ProductID: src.ProductID,
				Title:     src.Title,
				UnitPrice: src.UnitPrice,
				Image:     src.Image,
				Selection: src.Selection.Val,
				Quantity:  src.Quantity,
			}
		}),
	}, nil
}

func (r *cartRepository) RemoveIdleBefore(ctx context.Context, utime int64) (int64, error) {
	return r.d.DeleteIdleBefore(ctx, utime)
}
