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

const OrderStatusEventName = "order_status_events"

// OrderStatusChangedEvent 订单每次成功变更状态都会发一条, 下单时 OldStatus 为空
type OrderStatusChangedEvent struct {
	OrderSN   string `json:"orderSN"`
	BuyerID   int64  `json:"buyerID"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}
