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

package domain

import "github.com/shopspring/decimal"

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1 // 下架
	StatusOnShelf  Status = 2 // 上架
)

type OptionKind uint8

func (k OptionKind) ToUint8() uint8 {
	return uint8(k)
}

const (
	OptionKindText   OptionKind = 1 // 文本选项, 例如尺码
	OptionKindSwatch OptionKind = 2 // 色块选项, 带颜色值
)

type Product struct {
	ID           int64
	SN           string
	Title        string
	Description  string
	Price        decimal.Decimal
	Stock        int64
	Images       []string
	Categories   []string
	OptionGroups []OptionGroup
	Status       Status
	Ctime        int64
	Utime        int64
}

// FirstImage 加购物车落快照时用的主图
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type OptionGroup struct {
	Name   string
	Kind   OptionKind
	Values []OptionValue
}

// OptionValue 文本选项只有 Label, 色块选项额外带 Color
type OptionValue struct {
	Label string
	Color string
}
