package errs

var (
	SystemError     = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidQuantity = ErrorCode{Code: 503002, Msg: "商品数量非法"}
	ProductNotFound = ErrorCode{Code: 503003, Msg: "商品不存在或已下架"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
