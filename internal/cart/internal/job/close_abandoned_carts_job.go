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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/vraxia/storefront/internal/cart/internal/service"
)

// CloseAbandonedCartsJob 清理长期没有动静的购物车行项
type CloseAbandonedCartsJob struct {
	svc     service.Service
	idleFor time.Duration
	timeout time.Duration
	logger  *elog.Component
}

func NewCloseAbandonedCartsJob(svc service.Service, idleFor, timeout time.Duration) *CloseAbandonedCartsJob {
	return &CloseAbandonedCartsJob{
		svc:     svc,
		idleFor: idleFor,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (c *CloseAbandonedCartsJob) Name() string {
	return "CloseAbandonedCartsJob"
}

func (c *CloseAbandonedCartsJob) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, c.timeout)
	defer cancelFunc()
	before := time.Now().Add(-c.idleFor)
	deleted, err := c.svc.PruneIdleItems(ctx, before)
	if err != nil {
		return fmt.Errorf("清理闲置购物车失败: %w", err)
	}
	if deleted > 0 {
		c.logger.Info("清理闲置购物车完成", elog.Int64("deleted", deleted))
	}
	return nil
}
