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
	"github.com/vraxia/storefront/internal/product/internal/domain"
	"gorm.io/gorm"
)

var ErrProductNotFound = gorm.ErrRecordNotFound

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	FindBySN(ctx context.Context, sn string) (Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, p Product) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	Delete(ctx context.Context, id int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, domain.StatusOnShelf.ToUint8()).
		First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindBySN(ctx context.Context, sn string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).
		Where("sn = ? AND status = ?", sn, domain.StatusOnShelf.ToUint8()).
		First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Save(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id == 0 {
		p.Ctime = now
		err := d.db.WithContext(ctx).Create(&p).Error
		return p.Id, err
	}
	return p.Id, d.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"title":         p.Title,
			"description":   p.Description,
			"price":         p.Price,
			"stock":         p.Stock,
			"images":        p.Images,
			"categories":    p.Categories,
			"option_groups": p.OptionGroups,
			"status":        p.Status,
			"utime":         p.Utime,
		}).Error
}

func (d *ProductGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Product{}).Error
}

type Product struct {
	Id          int64           `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN          string          `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	Title       string          `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string          `gorm:"not null;comment:商品描述"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:商品单价"`
	Stock       int64           `gorm:"not null;default:0;comment:库存数量"`
	Images      sqlx.JsonColumn[[]string] `gorm:"type:json;comment:商品图片列表"`
	// Categories 可能是二次编码的脏数据, 统一在 repository 层归一化
	Categories   sqlx.JsonColumn[[]string]             `gorm:"type:json;comment:商品分类列表"`
	OptionGroups sqlx.JsonColumn[[]OptionGroup]        `gorm:"type:json;comment:商品销售选项, JSON格式"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime        int64
	Utime        int64
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
