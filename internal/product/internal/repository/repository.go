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
	"encoding/json"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/vraxia/storefront/internal/product/internal/domain"
	"github.com/vraxia/storefront/internal/product/internal/repository/dao"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
	Save(ctx context.Context, p domain.Product) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return r.toDomain(p), nil
}

func (r *productRepository) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	p, err := r.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Product{}, err
	}
	return r.toDomain(p), nil
}

func (r *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	ps, err := r.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), nil
}

func (r *productRepository) Total(ctx context.Context) (int64, error) {
	return r.d.Count(ctx)
}

func (r *productRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	return r.d.Save(ctx, r.toEntity(p))
}

func (r *productRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.d.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.d.Delete(ctx, id)
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:          p.Id,
		SN:          p.SN,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Images:      p.Images.Val,
		// 历史数据里分类偶尔被二次编码, 统一在这里归一化, 读取方不再防御
		Categories: normalizeCategories(p.Categories.Val),
		OptionGroups: slice.Map(p.OptionGroups.Val, func(idx int, src dao.OptionGroup) domain.OptionGroup {
			return domain.OptionGroup{
				Name: src.Name,
				Kind: domain.OptionKind(src.Kind),
				Values: slice.Map(src.Values, func(idx int, v dao.OptionValue) domain.OptionValue {
					return domain.OptionValue{Label: v.Label, Color: v.Color}
				}),
			}
		}),
		Status: domain.Status(p.Status),
		Ctime:  p.Ctime,
		Utime:  p.Utime,
	}
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:          p.ID,
		SN:          p.SN,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Images:      sqlx.JsonColumn[[]string]{Val: p.Images, Valid: true},
		Categories:  sqlx.JsonColumn[[]string]{Val: p.Categories, Valid: true},
		OptionGroups: sqlx.JsonColumn[[]dao.OptionGroup]{
			Val: slice.Map(p.OptionGroups, func(idx int, src domain.OptionGroup) dao.OptionGroup {
				return dao.OptionGroup{
					Name: src.Name,
					Kind: src.Kind.ToUint8(),
					Values: slice.Map(src.Values, func(idx int, v domain.OptionValue) dao.OptionValue {
						return dao.OptionValue{Label: v.Label, Color: v.Color}
					}),
				}
			}),
			Valid: true,
		},
		Status: p.Status.ToUint8(),
	}
}

// normalizeCategories 兼容 ["[\"a\",\"b\"]"] 这种列表里嵌套了字符串化列表的脏数据
func normalizeCategories(cs []string) []string {
	res := make([]string, 0, len(cs))
	for _, c := range cs {
		trimmed := strings.TrimSpace(c)
		if strings.HasPrefix(trimmed, "[") {
			var nested []string
			if err := json.Unmarshal([]byte(trimmed), &nested); err == nil {
				res = append(res, nested...)
				continue
			}
		}
		if trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
