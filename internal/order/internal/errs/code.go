package errs

var (
	SystemError       = ErrorCode{Code: 505001, Msg: "系统错误"}
	EmptyCart         = ErrorCode{Code: 505002, Msg: "购物车为空"}
	CouponRejected    = ErrorCode{Code: 505003, Msg: "优惠券不可用"}
	InvalidTransition = ErrorCode{Code: 505004, Msg: "订单当前状态不允许该操作"}
	OrderNotFound     = ErrorCode{Code: 505005, Msg: "订单不存在"}
	InvalidPayment    = ErrorCode{Code: 505006, Msg: "支付方式非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
