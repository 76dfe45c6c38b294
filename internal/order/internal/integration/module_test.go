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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vraxia/storefront/internal/cart"
	"github.com/vraxia/storefront/internal/coupon"
	"github.com/vraxia/storefront/internal/order"
	"github.com/vraxia/storefront/internal/order/internal/domain"
	"github.com/vraxia/storefront/internal/order/internal/event"
	"github.com/vraxia/storefront/internal/order/internal/repository/dao"
	"github.com/vraxia/storefront/internal/order/internal/web"
	"github.com/vraxia/storefront/internal/pricing"
	"github.com/vraxia/storefront/internal/product"
	"github.com/vraxia/storefront/internal/test"
	testioc "github.com/vraxia/storefront/internal/test/ioc"
)

const testUID = int64(234)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server      *egin.Component
	adminServer *egin.Component
	db          *egorm.Component
	mq          mq.MQ
	dao         dao.OrderDAO
	cartSvc     cart.Service
	productID   int64
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ec := testioc.InitCache()
	s.mq = testioc.InitMQ()

	productModule, err := product.InitModule(s.db)
	require.NoError(s.T(), err)
	cartModule, err := cart.InitModule(s.db, productModule.Svc)
	require.NoError(s.T(), err)
	couponModule, err := coupon.InitModule(s.db, ec)
	require.NoError(s.T(), err)
	calculator, err := pricing.NewCalculator(pricing.Config{})
	require.NoError(s.T(), err)
	orderModule, err := order.InitModule(s.db, ec, s.mq, cartModule.Svc, couponModule.Svc, calculator)
	require.NoError(s.T(), err)

	s.dao = dao.NewOrderGORMDAO(s.db)
	s.cartSvc = cartModule.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	orderModule.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	orderModule.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer

	// 下单用的商品
	s.productID, err = productModule.Svc.SaveProduct(context.Background(), product.Product{
		Title:  "Linen Shirt",
		Price:  decimal.RequireFromString("49.90"),
		Stock:  100,
		Status: product.StatusOnShelf,
	})
	require.NoError(s.T(), err)

	_, err = couponModule.Svc.SaveCoupon(context.Background(), coupon.Coupon{
		Code:            "SUMMER20",
		DiscountPercent: 20,
		ExpiresAt:       time.Now().Add(30 * 24 * time.Hour).UnixMilli(),
	})
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `orders`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `order_items`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `cart_items`").Error)
}

func (s *OrderModuleTestSuite) fillCart(quantity int64) {
	_, err := s.cartSvc.AddItem(context.Background(), testUID, s.productID,
		cart.Selection{"Size": "M"}, quantity)
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) createOrderReq(couponCode string) web.CreateOrderReq {
	return web.CreateOrderReq{
		RequestID: uuid.New().String(),
		Shipping: web.ShippingInfo{
			FullName: "Ada Wong",
			Email:    "ada@example.com",
			Country:  "US",
			City:     "Portland",
			Address:  "100 Pine St",
		},
		PaymentProvider: "stripe",
		PaymentRef:      "pi_3OqXyzABC",
		CouponCode:      couponCode,
	}
}

func (s *OrderModuleTestSuite) postJSON(server *egin.Component, path string, body any) (int, []byte) {
	t := s.T()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(json.RawMessage(data)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.Body.Bytes()
}

func (s *OrderModuleTestSuite) TestCreateOrder() {
	t := s.T()
	s.fillCart(2)

	code, body := s.postJSON(s.server, "/order/create", s.createOrderReq(""))
	require.Equal(t, 200, code)
	var result test.Result[web.CreateOrderResp]
	require.NoError(t, json.Unmarshal(body, &result))
	require.NotEmpty(t, result.Data.OrderSN)

	// 订单落库, 初始状态 pending
	entity, err := s.dao.FindBySN(context.Background(), result.Data.OrderSN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending.ToUint8(), entity.Status)
	assert.Equal(t, "99.80", entity.Subtotal.StringFixed(2))
	assert.Equal(t, "15.00", entity.ShippingFee.StringFixed(2))
	assert.Equal(t, "114.80", entity.Total.StringFixed(2))

	// 快照行项的变体标识和购物车侧的推导一致
	items, err := s.dao.FindItemsByOrderID(context.Background(), entity.Id)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, cart.VariantID(s.productID, cart.Selection{"Size": "M"}), items[0].VariantID)

	// 下单后购物车清空
	c, err := s.cartSvc.FindCart(context.Background(), testUID)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func (s *OrderModuleTestSuite) TestCreateOrder_WithCoupon() {
	t := s.T()
	s.fillCart(5)

	code, body := s.postJSON(s.server, "/order/create", s.createOrderReq("summer20"))
	require.Equal(t, 200, code)
	var result test.Result[web.CreateOrderResp]
	require.NoError(t, json.Unmarshal(body, &result))

	entity, err := s.dao.FindBySN(context.Background(), result.Data.OrderSN)
	require.NoError(t, err)
	// 249.50 打八折 = 199.60, 过了门槛免运费
	assert.Equal(t, "SUMMER20", entity.CouponCode)
	assert.Equal(t, "49.90", entity.Discount.StringFixed(2))
	assert.Equal(t, "0.00", entity.ShippingFee.StringFixed(2))
	assert.Equal(t, "199.60", entity.Total.StringFixed(2))
}

func (s *OrderModuleTestSuite) TestCreateOrder_DuplicateRequestID() {
	t := s.T()
	s.fillCart(1)

	req := s.createOrderReq("")
	code, _ := s.postJSON(s.server, "/order/create", req)
	require.Equal(t, 200, code)

	s.fillCart(1)
	code, body := s.postJSON(s.server, "/order/create", req)
	require.Equal(t, 200, code)
	var result test.Result[any]
	require.NoError(t, json.Unmarshal(body, &result))
	assert.NotZero(t, result.Code)
}

func (s *OrderModuleTestSuite) TestAdvanceToDeliveredAndRefund() {
	t := s.T()
	s.fillCart(1)

	code, body := s.postJSON(s.server, "/order/create", s.createOrderReq(""))
	require.Equal(t, 200, code)
	var created test.Result[web.CreateOrderResp]
	require.NoError(t, json.Unmarshal(body, &created))
	sn := created.Data.OrderSN

	consumer, err := s.mq.Consumer(event.OrderStatusEventName, "test-group")
	require.NoError(t, err)

	for _, want := range []string{"processing", "shipped", "delivered"} {
		code, body = s.postJSON(s.adminServer, "/order/advance", web.AdvanceOrderReq{OrderSN: sn})
		require.Equal(t, 200, code)
		var advanced test.Result[web.OrderStatusResp]
		require.NoError(t, json.Unmarshal(body, &advanced))
		assert.Equal(t, want, advanced.Data.Status)
	}

	// 已送达后继续推进要报非法流转
	code, body = s.postJSON(s.adminServer, "/order/advance", web.AdvanceOrderReq{OrderSN: sn})
	require.Equal(t, 200, code)
	var failed test.Result[any]
	require.NoError(t, json.Unmarshal(body, &failed))
	assert.Equal(t, 505004, failed.Code)

	// 已送达走退款
	code, body = s.postJSON(s.server, "/order/cancel", web.CancelOrderReq{OrderSN: sn})
	require.Equal(t, 200, code)
	var refunded test.Result[web.OrderStatusResp]
	require.NoError(t, json.Unmarshal(body, &refunded))
	assert.Equal(t, "refunded", refunded.Data.Status)

	// 每次成功流转都有事件
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var statuses []string
	for i := 0; i < 4; i++ {
		msg, err := consumer.ConsumeChan(ctx)
		require.NoError(t, err)
		m := <-msg
		var evt event.OrderStatusChangedEvent
		require.NoError(t, json.Unmarshal(m.Value, &evt))
		assert.Equal(t, sn, evt.OrderSN)
		statuses = append(statuses, evt.NewStatus)
	}
	assert.Contains(t, statuses, "refunded")
}

func (s *OrderModuleTestSuite) TestCancelPendingOrder() {
	t := s.T()
	s.fillCart(1)

	code, body := s.postJSON(s.server, "/order/create", s.createOrderReq(""))
	require.Equal(t, 200, code)
	var created test.Result[web.CreateOrderResp]
	require.NoError(t, json.Unmarshal(body, &created))
	sn := created.Data.OrderSN

	code, body = s.postJSON(s.server, "/order/cancel", web.CancelOrderReq{OrderSN: sn})
	require.Equal(t, 200, code)
	var cancelled test.Result[web.OrderStatusResp]
	require.NoError(t, json.Unmarshal(body, &cancelled))
	assert.Equal(t, "cancelled", cancelled.Data.Status)

	// 重复取消: 幂等失败而不是幂等成功
	code, body = s.postJSON(s.server, "/order/cancel", web.CancelOrderReq{OrderSN: sn})
	require.Equal(t, 200, code)
	var failed test.Result[any]
	require.NoError(t, json.Unmarshal(body, &failed))
	assert.Equal(t, 505004, failed.Code)
}

func (s *OrderModuleTestSuite) TestCreateOrder_EmptyCart() {
	t := s.T()
	code, body := s.postJSON(s.server, "/order/create", s.createOrderReq(""))
	require.Equal(t, 200, code)
	var result test.Result[any]
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 505002, result.Code)
}
