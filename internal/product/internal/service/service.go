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

	"github.com/lithammer/shortuuid/v4"
	"github.com/vraxia/storefront/internal/product/internal/domain"
	"github.com/vraxia/storefront/internal/product/internal/repository"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	FindProductByID(ctx context.Context, id int64) (domain.Product, error)
	FindProductBySN(ctx context.Context, sn string) (domain.Product, error)
	ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	SaveProduct(ctx context.Context, p domain.Product) (int64, error)
	// PublishProduct 上架, offShelf 为 true 时下架
	PublishProduct(ctx context.Context, id int64, offShelf bool) error
	DeleteProduct(ctx context.Context, id int64) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindProductByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindProductBySN(ctx context.Context, sn string) (domain.Product, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) SaveProduct(ctx context.Context, p domain.Product) (int64, error) {
	if p.SN == "" {
		p.SN = shortuuid.New()
	}
	return s.repo.Save(ctx, p)
}

func (s *service) PublishProduct(ctx context.Context, id int64, offShelf bool) error {
	status := domain.StatusOnShelf
	if offShelf {
		status = domain.StatusOffShelf
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
