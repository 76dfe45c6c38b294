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
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCouponNotFound = gorm.ErrRecordNotFound

type CouponDAO interface {
	FindByCode(ctx context.Context, code string) (Coupon, error)
	Save(ctx context.Context, c Coupon) (int64, error)
	List(ctx context.Context, offset int, limit int) ([]Coupon, error)
	Count(ctx context.Context) (int64, error)
}

type CouponGORMDAO struct {
	db *egorm.Component
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &CouponGORMDAO{db: db}
}

func (g *CouponGORMDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var c Coupon
	err := g.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	return c, err
}

func (g *CouponGORMDAO) Save(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"discount_percent": c.DiscountPercent,
			"expires_at":       c.ExpiresAt,
			"usage_limit":      c.UsageLimit,
			"utime":            now,
		}),
	}).Create(&c).Error
	return c.Id, err
}

func (g *CouponGORMDAO) List(ctx context.Context, offset int, limit int) ([]Coupon, error) {
	var res []Coupon
	err := g.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (g *CouponGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Coupon{}).Count(&count).Error
	return count, err
}

type Coupon struct {
	Id   int64  `gorm:"primaryKey,autoIncrement"`
	Code string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code;comment:统一大写"`
	// 折扣百分比 0-100
	DiscountPercent int64 `gorm:"not null"`
	// 毫秒时间戳, 0 表示长期有效
	ExpiresAt int64 `gorm:"index"`
	// NULL 表示不限次数
	UsageLimit sql.NullInt64
	TimesUsed  int64
	Ctime      int64
	Utime      int64 `gorm:"index"`
}
