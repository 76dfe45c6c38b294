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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vraxia/storefront/internal/cart/internal/domain"
	"github.com/vraxia/storefront/internal/product"
)

const testUID = int64(234)

type fakeProductService struct {
	products map[int64]product.Product
}

func (f *fakeProductService) FindProductByID(_ context.Context, id int64) (product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return product.Product{}, product.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductService) FindProductBySN(_ context.Context, _ string) (product.Product, error) {
	return product.Product{}, product.ErrProductNotFound
}

func (f *fakeProductService) ListProducts(_ context.Context, _, _ int) ([]product.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductService) SaveProduct(_ context.Context, _ product.Product) (int64, error) {
	return 0, nil
}

func (f *fakeProductService) PublishProduct(_ context.Context, _ int64, _ bool) error {
	return nil
}

func (f *fakeProductService) DeleteProduct(_ context.Context, _ int64) error {
	return nil
}

// memoryCartRepository 保持加入顺序的内存实现
type memoryCartRepository struct {
	items []domain.LineItem
}

func (m *memoryCartRepository) AddItem(_ context.Context, _ int64, item domain.LineItem) error {
	for i := range m.items {
		if m.items[i].VariantID == item.VariantID {
			m.items[i].Quantity += item.Quantity
			return nil
		}
	}
	m.items = append(m.items, item)
	return nil
}

func (m *memoryCartRepository) UpdateQuantity(_ context.Context, _ int64, variantID string, quantity int64) error {
	for i := range m.items {
		if m.items[i].VariantID == variantID {
			m.items[i].Quantity = quantity
		}
	}
	return nil
}

func (m *memoryCartRepository) RemoveItem(_ context.Context, _ int64, variantID string) error {
	res := m.items[:0]
	for _, it := range m.items {
		if it.VariantID != variantID {
			res = append(res, it)
		}
	}
	m.items = res
	return nil
}

func (m *memoryCartRepository) Clear(_ context.Context, _ int64) error {
	m.items = nil
	return nil
}

func (m *memoryCartRepository) FindCart(_ context.Context, uid int64) (domain.Cart, error) {
	items := make([]domain.LineItem, len(m.items))
	copy(items, m.items)
	return domain.Cart{Uid: uid, Items: items}, nil
}

func (m *memoryCartRepository) RemoveIdleBefore(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func newTestService() Service {
	productSvc := &fakeProductService{
		products: map[int64]product.Product{
			1: {
				ID:     1,
				Title:  "Linen Shirt",
				Price:  decimal.RequireFromString("49.90"),
				Images: []string{"https://cdn.vraxia.com/p/1-main.jpg", "https://cdn.vraxia.com/p/1-alt.jpg"},
			},
			2: {
				ID:    2,
				Title: "Canvas Tote",
				Price: decimal.RequireFromString("15.00"),
			},
		},
	}
	return NewService(&memoryCartRepository{}, productSvc)
}

func TestService_AddItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, testUID, 1, domain.Selection{"Size": "M", "Color": "Sand"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "1-Color:Sand-Size:M", item.VariantID)
	assert.Equal(t, "Linen Shirt", item.Title)
	assert.Equal(t, "https://cdn.vraxia.com/p/1-main.jpg", item.Image)
	assert.True(t, decimal.RequireFromString("49.90").Equal(item.UnitPrice))

	cart, err := svc.FindCart(ctx, testUID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cart.ItemCount())
}

func TestService_AddItem_MergeSameVariant(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, testUID, 1, domain.Selection{"Color": "Sand", "Size": "M"}, 2)
	require.NoError(t, err)
	// 同样的选项换个顺序, 仍应合并到同一行项
	_, err = svc.AddItem(ctx, testUID, 1, domain.Selection{"Size": "M", "Color": "Sand"}, 3)
	require.NoError(t, err)

	cart, err := svc.FindCart(ctx, testUID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)
}

func TestService_AddItem_DistinctVariants(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, testUID, 1, domain.Selection{"Size": "M"}, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, testUID, 1, domain.Selection{"Size": "L"}, 1)
	require.NoError(t, err)

	cart, err := svc.FindCart(ctx, testUID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestService_AddItem_InvalidQuantity(t *testing.T) {
	svc := newTestService()
	for _, quantity := range []int64{0, -1} {
		_, err := svc.AddItem(context.Background(), testUID, 1, nil, quantity)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestService_UpdateQuantity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, testUID, 2, nil, 3)
	require.NoError(t, err)

	err = svc.UpdateQuantity(ctx, testUID, item.VariantID, 1)
	require.NoError(t, err)
	cart, err := svc.FindCart(ctx, testUID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart.ItemCount())

	// 数量归零等价于移除
	err = svc.UpdateQuantity(ctx, testUID, item.VariantID, 0)
	require.NoError(t, err)
	cart, err = svc.FindCart(ctx, testUID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.ItemCount())
}

func TestService_RemoveItem_Absent(t *testing.T) {
	svc := newTestService()
	err := svc.RemoveItem(context.Background(), testUID, "999-Size:XL")
	assert.NoError(t, err)
}

func TestService_Clear(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, testUID, 1, domain.Selection{"Size": "M"}, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, testUID, 2, nil, 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, testUID))
	cart, err := svc.FindCart(ctx, testUID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
