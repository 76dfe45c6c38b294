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

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("商品数量非法")

// Selection 选项组名到所选值的映射, 例如 {"Color": "Sand", "Size": "M"}
type Selection map[string]string

// VariantID 根据商品ID和选项组合生成变体标识。
// 同样的键值对不论插入顺序生成的标识一定相同, 任意一对不同则标识不同。
// 例如: "1-Color:Sand-Size:M"; 没有选项时就是商品ID本身。
func VariantID(productID int64, selection Selection) string {
	pid := strconv.FormatInt(productID, 10)
	if len(selection) == 0 {
		return pid
	}
	pairs := make([]string, 0, len(selection))
	for name, value := range selection {
		pairs = append(pairs, name+":"+value)
	}
	// 组名在一个选择里不会重复, 按整个 name:value 排序等价于按组名排序
	sort.Strings(pairs)
	return pid + "-" + strings.Join(pairs, "-")
}

// LineItem 购物车行项。单价是加购时的快照, 后续不再回读商品目录。
type LineItem struct {
	VariantID string
	ProductID int64
	Title     string
	UnitPrice decimal.Decimal
	Image     string
	Selection Selection
	Quantity  int64
}

func (l LineItem) LinePrice() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart 按加入顺序排列的行项集合
type Cart struct {
	Uid   int64
	Items []LineItem
}

func (c Cart) Subtotal() decimal.Decimal {
	res := decimal.Zero
	for _, it := range c.Items {
		res = res.Add(it.LinePrice())
	}
	return res
}

func (c Cart) ItemCount() int64 {
	var res int64
	for _, it := range c.Items {
		res += it.Quantity
	}
	return res
}
