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

package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/vraxia/storefront/internal/pkg/mqx"
)

type OrderStatusChangedProducer = mqx.Producer[OrderStatusChangedEvent]

func NewOrderStatusChangedProducer(q mq.MQ) (OrderStatusChangedProducer, error) {
	return mqx.NewGeneralProducer[OrderStatusChangedEvent](q, OrderStatusEventName)
}
