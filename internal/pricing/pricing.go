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

// Package pricing 把小计、折扣和运费门槛合成最终报价。
package pricing

import (
	"fmt"

	"github.com/gotomicro/ego/core/econf"
	"github.com/shopspring/decimal"
)

// Config 金额用字符串承载, 解析成 decimal, 不走浮点
type Config struct {
	// FreeShippingThreshold 折后净额超过该值免运费
	FreeShippingThreshold string `yaml:"freeShippingThreshold"`
	// FlatShippingFee 未达门槛时的固定运费
	FlatShippingFee string `yaml:"flatShippingFee"`
}

const (
	defaultFreeShippingThreshold = "100"
	defaultFlatShippingFee       = "15"
)

// Quote 一次报价的分项金额, 全部非负
type Quote struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

type Calculator struct {
	freeShippingThreshold decimal.Decimal
	flatShippingFee       decimal.Decimal
}

func NewCalculator(cfg Config) (*Calculator, error) {
	if cfg.FreeShippingThreshold == "" {
		cfg.FreeShippingThreshold = defaultFreeShippingThreshold
	}
	if cfg.FlatShippingFee == "" {
		cfg.FlatShippingFee = defaultFlatShippingFee
	}
	threshold, err := decimal.NewFromString(cfg.FreeShippingThreshold)
	if err != nil {
		return nil, fmt.Errorf("免运费门槛配置非法: %w", err)
	}
	fee, err := decimal.NewFromString(cfg.FlatShippingFee)
	if err != nil {
		return nil, fmt.Errorf("固定运费配置非法: %w", err)
	}
	return &Calculator{
		freeShippingThreshold: threshold,
		flatShippingFee:       fee,
	}, nil
}

// InitCalculator 从配置的 pricing 段构造, 缺省 100/15
func InitCalculator() *Calculator {
	var cfg Config
	if err := econf.UnmarshalKey("pricing", &cfg); err != nil {
		panic(err)
	}
	calc, err := NewCalculator(cfg)
	if err != nil {
		panic(err)
	}
	return calc
}

// Quote 报价。折扣 = 小计 * 百分比 / 100; 折后净额不超过 0 或超过门槛都免运费,
// 否则收固定运费; 总价 = 净额 + 运费。discountPercent 不超过 100, 总价不会为负。
func (c *Calculator) Quote(subtotal decimal.Decimal, discountPercent int64) Quote {
	discount := decimal.Zero
	if discountPercent > 0 {
		discount = subtotal.
			Mul(decimal.NewFromInt(discountPercent)).
			Div(decimal.NewFromInt(100))
	}
	net := subtotal.Sub(discount)
	shipping := c.shippingFor(net)
	total := net.Add(shipping)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    total,
	}
}

func (c *Calculator) shippingFor(net decimal.Decimal) decimal.Decimal {
	if net.Sign() <= 0 {
		return decimal.Zero
	}
	if net.GreaterThan(c.freeShippingThreshold) {
		return decimal.Zero
	}
	return c.flatShippingFee
}
