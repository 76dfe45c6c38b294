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
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vraxia/storefront/internal/cart"
	"github.com/vraxia/storefront/internal/coupon"
	"github.com/vraxia/storefront/internal/order/internal/domain"
	"github.com/vraxia/storefront/internal/order/internal/event"
	"github.com/vraxia/storefront/internal/order/internal/repository"
	"github.com/vraxia/storefront/internal/pkg/sequencenumber"
	"github.com/vraxia/storefront/internal/pricing"
)

const testBuyerID = int64(789)

type fakeCartService struct {
	items   []cart.LineItem
	cleared bool
}

func (f *fakeCartService) AddItem(_ context.Context, _ int64, _ int64, _ cart.Selection, _ int64) (cart.LineItem, error) {
	return cart.LineItem{}, nil
}

func (f *fakeCartService) UpdateQuantity(_ context.Context, _ int64, _ string, _ int64) error {
	return nil
}

func (f *fakeCartService) RemoveItem(_ context.Context, _ int64, _ string) error {
	return nil
}

func (f *fakeCartService) Clear(_ context.Context, _ int64) error {
	f.cleared = true
	f.items = nil
	return nil
}

func (f *fakeCartService) FindCart(_ context.Context, uid int64) (cart.Cart, error) {
	items := make([]cart.LineItem, len(f.items))
	copy(items, f.items)
	return cart.Cart{Uid: uid, Items: items}, nil
}

func (f *fakeCartService) PruneIdleItems(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeCouponService struct {
	coupons map[string]coupon.Coupon
}

func (f *fakeCouponService) Validate(_ context.Context, code string, now time.Time) (coupon.CouponResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return coupon.CouponResult{Reason: coupon.RejectReasonEmpty}, nil
	}
	c, ok := f.coupons[code]
	if !ok {
		return coupon.CouponResult{Reason: coupon.RejectReasonNotFound}, nil
	}
	return c.Validate(now), nil
}

func (f *fakeCouponService) SaveCoupon(_ context.Context, _ coupon.Coupon) (int64, error) {
	return 0, nil
}

func (f *fakeCouponService) ListCoupons(_ context.Context, _ int, _ int) ([]coupon.Coupon, int64, error) {
	return nil, 0, nil
}

// memoryOrderRepository 按 CAS 语义实现状态更新
type memoryOrderRepository struct {
	orders []domain.Order
	nextID int64
}

func (m *memoryOrderRepository) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	m.nextID++
	order.ID = m.nextID
	m.orders = append(m.orders, order)
	return order, nil
}

func (m *memoryOrderRepository) FindOrderBySN(_ context.Context, sn string) (domain.Order, error) {
	for _, o := range m.orders {
		if o.SN == sn {
			return o, nil
		}
	}
	return domain.Order{}, repository.ErrOrderNotFound
}

func (m *memoryOrderRepository) FindOrderBySNAndBuyerID(_ context.Context, sn string, buyerID int64) (domain.Order, error) {
	for _, o := range m.orders {
		if o.SN == sn && o.BuyerID == buyerID {
			return o, nil
		}
	}
	return domain.Order{}, repository.ErrOrderNotFound
}

func (m *memoryOrderRepository) ListOrdersByUID(_ context.Context, uid int64, _ int, _ int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range m.orders {
		if o.BuyerID == uid {
			res = append(res, o)
		}
	}
	return res, nil
}

func (m *memoryOrderRepository) TotalOrdersByUID(_ context.Context, uid int64) (int64, error) {
	var count int64
	for _, o := range m.orders {
		if o.BuyerID == uid {
			count++
		}
	}
	return count, nil
}

func (m *memoryOrderRepository) ListOrders(_ context.Context, _ int, _ int) ([]domain.Order, error) {
	return m.orders, nil
}

func (m *memoryOrderRepository) TotalOrders(_ context.Context) (int64, error) {
	return int64(len(m.orders)), nil
}

func (m *memoryOrderRepository) UpdateOrderStatus(_ context.Context, id int64, from domain.OrderStatus, to domain.OrderStatus) error {
	for i := range m.orders {
		if m.orders[i].ID == id && m.orders[i].Status == from {
			m.orders[i].Status = to
			return nil
		}
	}
	return repository.ErrStatusConflict
}

type capturingProducer struct {
	events []event.OrderStatusChangedEvent
}

func (c *capturingProducer) Produce(_ context.Context, evt event.OrderStatusChangedEvent) error {
	c.events = append(c.events, evt)
	return nil
}

type testFixture struct {
	svc      Service
	repo     *memoryOrderRepository
	cartSvc  *fakeCartService
	producer *capturingProducer
}

func newTestFixture(t *testing.T) *testFixture {
	repo := &memoryOrderRepository{}
	cartSvc := &fakeCartService{
		items: []cart.LineItem{
			{
				VariantID: "1-Color:Sand-Size:M",
				ProductID: 1,
				Title:     "Linen Shirt",
				UnitPrice: decimal.RequireFromString("49.90"),
				Selection: cart.Selection{"Color": "Sand", "Size": "M"},
				Quantity:  2,
			},
			{
				VariantID: "2",
				ProductID: 2,
				Title:     "Canvas Tote",
				UnitPrice: decimal.RequireFromString("15.00"),
				Quantity:  1,
			},
		},
	}
	couponSvc := &fakeCouponService{
		coupons: map[string]coupon.Coupon{
			"SUMMER20": {
				Code:            "SUMMER20",
				DiscountPercent: 20,
				ExpiresAt:       time.Now().Add(24 * time.Hour).UnixMilli(),
			},
		},
	}
	calculator, err := pricing.NewCalculator(pricing.Config{})
	require.NoError(t, err)
	snGenerator := sequencenumber.NewGeneratorWith(
		func() time.Time { return time.UnixMilli(1700000000000) },
		func() string { return "2DTPNHVXZFLPEEXCNQDFFHWMJD" })
	producer := &capturingProducer{}
	return &testFixture{
		svc:      NewService(repo, cartSvc, couponSvc, calculator, snGenerator, producer),
		repo:     repo,
		cartSvc:  cartSvc,
		producer: producer,
	}
}

func defaultCheckout() domain.Checkout {
	return domain.Checkout{
		Shipping: domain.ShippingInfo{
			FullName: "Ada Wong",
			Email:    "ada@example.com",
			Country:  "US",
			City:     "Portland",
			Address:  "100 Pine St",
		},
		PaymentProvider: domain.PaymentProviderStripe,
		PaymentRef:      "pi_3OqXyzABC",
	}
}

func TestService_PlaceOrder(t *testing.T) {
	f := newTestFixture(t)
	order, err := f.svc.PlaceOrder(context.Background(), testBuyerID, defaultCheckout())
	require.NoError(t, err)

	assert.NotEmpty(t, order.SN)
	assert.Equal(t, testBuyerID, order.BuyerID)
	assert.Equal(t, domain.StatusPending, order.Status)
	require.Len(t, order.Items, 2)
	// 小计 49.90*2 + 15.00 = 114.80, 无折扣超过免邮门槛
	assert.Equal(t, "114.80", order.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", order.Discount.StringFixed(2))
	assert.Equal(t, "0.00", order.ShippingFee.StringFixed(2))
	assert.Equal(t, "114.80", order.Total.StringFixed(2))

	// 下单后购物车清空
	assert.True(t, f.cartSvc.cleared)

	// 下单本身也要发状态事件
	require.Len(t, f.producer.events, 1)
	assert.Equal(t, event.OrderStatusChangedEvent{
		OrderSN:   order.SN,
		BuyerID:   testBuyerID,
		OldStatus: "",
		NewStatus: "pending",
	}, f.producer.events[0])
}

func TestService_PlaceOrder_WithCoupon(t *testing.T) {
	f := newTestFixture(t)
	checkout := defaultCheckout()
	checkout.CouponCode = "summer20"

	order, err := f.svc.PlaceOrder(context.Background(), testBuyerID, checkout)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER20", order.CouponCode)
	// 114.80 * 20% = 22.96, 折后 91.84 未到门槛, 收 15 运费
	assert.Equal(t, "22.96", order.Discount.StringFixed(2))
	assert.Equal(t, "15.00", order.ShippingFee.StringFixed(2))
	assert.Equal(t, "106.84", order.Total.StringFixed(2))
}

func TestService_PlaceOrder_CouponRejected(t *testing.T) {
	f := newTestFixture(t)
	checkout := defaultCheckout()
	checkout.CouponCode = "NOPE"

	_, err := f.svc.PlaceOrder(context.Background(), testBuyerID, checkout)
	assert.ErrorIs(t, err, domain.ErrCouponRejected)
	assert.Empty(t, f.repo.orders)
}

func TestService_PlaceOrder_EmptyCart(t *testing.T) {
	f := newTestFixture(t)
	f.cartSvc.items = nil
	_, err := f.svc.PlaceOrder(context.Background(), testBuyerID, defaultCheckout())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestService_PlaceOrder_InvalidPayment(t *testing.T) {
	f := newTestFixture(t)
	checkout := defaultCheckout()
	checkout.PaymentProvider = "bitcoin"
	_, err := f.svc.PlaceOrder(context.Background(), testBuyerID, checkout)
	assert.ErrorIs(t, err, domain.ErrInvalidPayment)
}

func TestService_PlaceOrder_SnapshotImmutable(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	order, err := f.svc.PlaceOrder(ctx, testBuyerID, defaultCheckout())
	require.NoError(t, err)

	// 清空购物车不影响已下订单的快照
	require.NoError(t, f.cartSvc.Clear(ctx, testBuyerID))
	got, err := f.svc.FindOrder(ctx, testBuyerID, order.SN)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, "114.80", got.Total.StringFixed(2))
}

func TestService_AdvanceOrder(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	order, err := f.svc.PlaceOrder(ctx, testBuyerID, defaultCheckout())
	require.NoError(t, err)

	for _, want := range []domain.OrderStatus{
		domain.StatusProcessing,
		domain.StatusShipped,
		domain.StatusDelivered,
	} {
		order, err = f.svc.AdvanceOrder(ctx, order.SN)
		require.NoError(t, err)
		assert.Equal(t, want, order.Status)
	}

	// 已送达无法继续推进
	_, err = f.svc.AdvanceOrder(ctx, order.SN)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// 下单 + 三次推进 = 四条事件, 首条 OldStatus 为空
	require.Len(t, f.producer.events, 4)
	wantTransitions := []struct {
		oldStatus string
		newStatus string
	}{
		{"", "pending"},
		{"pending", "processing"},
		{"processing", "shipped"},
		{"shipped", "delivered"},
	}
	for i, want := range wantTransitions {
		assert.Equal(t, want.oldStatus, f.producer.events[i].OldStatus)
		assert.Equal(t, want.newStatus, f.producer.events[i].NewStatus)
	}
}

func TestService_CancelOrRefundOrder(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	t.Run("待处理订单取消", func(t *testing.T) {
		order, err := f.svc.PlaceOrder(ctx, testBuyerID, defaultCheckout())
		require.NoError(t, err)
		order, err = f.svc.CancelOrRefundOrder(ctx, order.SN)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, order.Status)

		// 第二次取消失败, 状态不变
		_, err = f.svc.CancelOrRefundOrder(ctx, order.SN)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		got, err := f.svc.FindOrder(ctx, testBuyerID, order.SN)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, got.Status)
	})
}

func TestService_CancelOrRefundOrder_DeliveredRefunds(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	order, err := f.svc.PlaceOrder(ctx, testBuyerID, defaultCheckout())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		order, err = f.svc.AdvanceOrder(ctx, order.SN)
		require.NoError(t, err)
	}
	require.Equal(t, domain.StatusDelivered, order.Status)

	order, err = f.svc.CancelOrRefundOrder(ctx, order.SN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefunded, order.Status)

	_, err = f.svc.CancelOrRefundOrder(ctx, order.SN)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// staleReadRepository 读订单时固定返回 pending, 模拟读后被并发改掉的场景
type staleReadRepository struct {
	*memoryOrderRepository
}

func (s *staleReadRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := s.memoryOrderRepository.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.StatusPending
	return order, nil
}

func TestService_TransitionConflict(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	order, err := f.svc.PlaceOrder(ctx, testBuyerID, defaultCheckout())
	require.NoError(t, err)

	// 真实状态已经是 cancelled
	require.NoError(t, f.repo.UpdateOrderStatus(ctx, order.ID, domain.StatusPending, domain.StatusCancelled))

	calculator, err := pricing.NewCalculator(pricing.Config{})
	require.NoError(t, err)
	staleSvc := NewService(&staleReadRepository{memoryOrderRepository: f.repo},
		f.cartSvc, &fakeCouponService{}, calculator,
		sequencenumber.NewGenerator(), f.producer)

	// 读到旧的 pending, CAS 落库时撞上 cancelled, 订单保持不变
	_, err = staleSvc.AdvanceOrder(ctx, order.SN)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	got, err := f.svc.FindOrder(ctx, testBuyerID, order.SN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
}

func TestService_ListOrdersByUID(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	_, err := f.svc.PlaceOrder(ctx, testBuyerID, defaultCheckout())
	require.NoError(t, err)

	orders, total, err := f.svc.ListOrdersByUID(ctx, testBuyerID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, orders, 1)

	orders, total, err = f.svc.ListOrdersByUID(ctx, 999, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, orders)
}
