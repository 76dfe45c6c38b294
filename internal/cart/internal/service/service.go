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
	"fmt"
	"time"

	"github.com/vraxia/storefront/internal/cart/internal/domain"
	"github.com/vraxia/storefront/internal/cart/internal/repository"
	"github.com/vraxia/storefront/internal/product"
)

type Service interface {
	AddItem(ctx context.Context, uid, productID int64, selection domain.Selection, quantity int64) (domain.LineItem, error)
	UpdateQuantity(ctx context.Context, uid int64, variantID string, quantity int64) error
	RemoveItem(ctx context.Context, uid int64, variantID string) error
	Clear(ctx context.Context, uid int64) error
	FindCart(ctx context.Context, uid int64) (domain.Cart, error)
	PruneIdleItems(ctx context.Context, before time.Time) (int64, error)
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{repo: repo, productSvc: productSvc}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

// AddItem 加购。价格、名称、主图此刻落快照, 同一变体重复加购只累加数量。
func (s *service) AddItem(ctx context.Context, uid, productID int64, selection domain.Selection, quantity int64) (domain.LineItem, error) {
	if quantity < 1 {
		return domain.LineItem{}, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	p, err := s.productSvc.FindProductByID(ctx, productID)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("查找商品失败: %w", err)
	}
	item := domain.LineItem{
		VariantID: domain.VariantID(p.ID, selection),
		ProductID: p.ID,
		Title:     p.Title,
		UnitPrice: p.Price,
		Image:     p.FirstImage(),
		Selection: selection,
		Quantity:  quantity,
	}
	if err = s.repo.AddItem(ctx, uid, item); err != nil {
		return domain.LineItem{}, fmt.Errorf("保存购物车失败: %w", err)
	}
	return item, nil
}

// UpdateQuantity 数量小于等于 0 等价于移除, 不算错误
func (s *service) UpdateQuantity(ctx context.Context, uid int64, variantID string, quantity int64) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, uid, variantID)
	}
	return s.repo.UpdateQuantity(ctx, uid, variantID, quantity)
}

// RemoveItem 移除不存在的变体是幂等的 no-op
func (s *service) RemoveItem(ctx context.Context, uid int64, variantID string) error {
	return s.repo.RemoveItem(ctx, uid, variantID)
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.Clear(ctx, uid)
}

func (s *service) FindCart(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.repo.FindCart(ctx, uid)
}

// PruneIdleItems 清理在 before 之前就没再动过的行项, 给定时任务用
func (s *service) PruneIdleItems(ctx context.Context, before time.Time) (int64, error) {
	return s.repo.RemoveIdleBefore(ctx, before.UnixMilli())
}
