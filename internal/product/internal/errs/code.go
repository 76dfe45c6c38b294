package errs

var (
	SystemError     = ErrorCode{Code: 502001, Msg: "系统错误"}
	ProductNotFound = ErrorCode{Code: 502002, Msg: "商品不存在或已下架"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
