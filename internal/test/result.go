package test

// Result 反序列化 ginx.Result 用, Data 带上具体类型
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
