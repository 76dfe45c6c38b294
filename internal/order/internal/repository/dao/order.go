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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict CAS 更新没有命中行, 说明状态已经被别人改掉了
	ErrStatusConflict = errors.New("订单状态已变更")
)

type OrderDAO interface {
	Create(ctx context.Context, order Order, items []OrderItem) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset int, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	// UpdateStatus 带旧状态的 CAS 更新, 没命中返回 ErrStatusConflict
	UpdateStatus(ctx context.Context, id int64, from uint8, to uint8) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (g *OrderGORMDAO) Create(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		order.Ctime, order.Utime = now, now
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return order.Id, err
}

func (g *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var order Order
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&order).Error
	return order, err
}

func (g *OrderGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var order Order
	err := g.db.WithContext(ctx).
		Where("sn = ? AND buyer_id = ?", sn, buyerID).
		First(&order).Error
	return order, err
}

func (g *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).
		Where("order_id = ?", oid).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (g *OrderGORMDAO) ListByUID(ctx context.Context, uid int64, offset int, limit int) ([]Order, error) {
	var orders []Order
	err := g.db.WithContext(ctx).
		Where("buyer_id = ?", uid).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (g *OrderGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", uid).
		Count(&count).Error
	return count, err
}

func (g *OrderGORMDAO) List(ctx context.Context, offset int, limit int) ([]Order, error) {
	var orders []Order
	err := g.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (g *OrderGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Count(&count).Error
	return count, err
}

func (g *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, from uint8, to uint8) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id;comment:买家ID"`

	ShippingFullName string `gorm:"type:varchar(255);not null"`
	ShippingEmail    string `gorm:"type:varchar(255);not null"`
	ShippingPhone    string `gorm:"type:varchar(64)"`
	ShippingCountry  string `gorm:"type:varchar(128);not null"`
	ShippingCity     string `gorm:"type:varchar(128);not null"`
	ShippingAddress  string `gorm:"type:varchar(512);not null"`

	PaymentProvider string `gorm:"type:varchar(32);not null;comment:stripe|paypal|google_pay|apple_pay"`
	// 调用方提供的支付凭证号, 本系统不参与支付结算
	PaymentRef string `gorm:"type:varchar(255)"`
	CouponCode string `gorm:"type:varchar(64)"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ShippingFee decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Status uint8 `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:1=待处理 2=处理中 3=已发货 4=已送达 5=已取消 6=已退款"`
	Ctime  int64
	Utime  int64 `gorm:"index"`
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	VariantID string `gorm:"type:varchar(512);not null;comment:变体标识"`
	ProductID int64  `gorm:"not null"`
	Title     string `gorm:"type:varchar(255);not null;comment:下单时的商品标题快照"`
	// 下单时的单价快照
	UnitPrice decimal.Decimal                     `gorm:"type:decimal(10,2);not null"`
	Image     string                              `gorm:"type:varchar(512)"`
	Selection sqlx.JsonColumn[map[string]string]  `gorm:"type:varchar(2048);comment:选项组快照"`
	Quantity  int64                               `gorm:"not null"`
	Ctime     int64
	Utime     int64
}
