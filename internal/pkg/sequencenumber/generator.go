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

package sequencenumber

import (
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Generator 生成订单序列号
type Generator struct {
	nowFunc  func() time.Time
	uuidFunc func() string
}

func NewGeneratorWith(nowFunc func() time.Time, uuidFunc func() string) *Generator {
	return &Generator{
		nowFunc:  nowFunc,
		uuidFunc: uuidFunc,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, func() string { return shortuuid.New() })
}

// Generate 生成 32 位序列号: 毫秒时间戳 + 用户ID后四位 + shortuuid 补齐
func (g *Generator) Generate(uid int64) (string, error) {
	timestamp := g.nowFunc().UnixMilli()
	lastFour := fmt.Sprintf("%04d", uid%10000)
	sn := fmt.Sprintf("%d%s%s", timestamp, lastFour, strings.ToUpper(g.uuidFunc()))
	if len(sn) < 32 {
		return "", fmt.Errorf("生成的序列号长度不足: %s", sn)
	}
	return sn[:32], nil
}
