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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartDAO interface {
	Upsert(ctx context.Context, item CartItem) error
	UpdateQuantity(ctx context.Context, uid int64, variantID string, quantity int64) error
	Delete(ctx context.Context, uid int64, variantID string) error
	DeleteByUID(ctx context.Context, uid int64) error
	FindByUID(ctx context.Context, uid int64) ([]CartItem, error)
	DeleteIdleBefore(ctx context.Context, utime int64) (int64, error)
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&CartItem{})
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

// Upsert 同一变体已存在则数量累加, 否则新建行项
func (d *CartGORMDAO) Upsert(ctx context.Context, item CartItem) error {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "variant_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
			"utime":    now,
		}),
	}).Create(&item).Error
}

func (d *CartGORMDAO) UpdateQuantity(ctx context.Context, uid int64, variantID string, quantity int64) error {
	return d.db.WithContext(ctx).Model(&CartItem{}).
		Where("uid = ? AND variant_id = ?", uid, variantID).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *CartGORMDAO) Delete(ctx context.Context, uid int64, variantID string) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND variant_id = ?", uid, variantID).
		Delete(&CartItem{}).Error
}

func (d *CartGORMDAO) DeleteByUID(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).Where("uid = ?", uid).Delete(&CartItem{}).Error
}

func (d *CartGORMDAO) FindByUID(ctx context.Context, uid int64) ([]CartItem, error) {
	var res []CartItem
	// 按加入顺序返回
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

// DeleteIdleBefore 清理长期未动的购物车行项, 返回删除行数
func (d *CartGORMDAO) DeleteIdleBefore(ctx context.Context, utime int64) (int64, error) {
	res := d.db.WithContext(ctx).Where("utime < ?", utime).Delete(&CartItem{})
	return res.RowsAffected, res.Error
}

type CartItem struct {
	Id        int64           `gorm:"primaryKey;autoIncrement;comment:行项自增ID"`
	Uid       int64           `gorm:"not null;uniqueIndex:uniq_uid_variant,priority:1;comment:用户ID"`
	VariantID string          `gorm:"column:variant_id;type:varchar(512);not null;uniqueIndex:uniq_uid_variant,priority:2;comment:变体标识"`
	ProductID int64           `gorm:"column:product_id;not null;comment:商品ID"`
	Title     string          `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:加购时单价快照"`
	Image     string          `gorm:"type:varchar(512);not null;comment:商品主图快照"`
	Selection sqlx.JsonColumn[map[string]string] `gorm:"type:json;comment:选项组合, 冗余用于展示"`
	Quantity  int64           `gorm:"not null;comment:购买数量"`
	Ctime     int64
	Utime     int64
}
