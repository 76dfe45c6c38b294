package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vraxia/storefront/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	couponRejectedResult = ginx.Result{
		Code: errs.CouponRejected.Code,
		Msg:  errs.CouponRejected.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidPaymentResult = ginx.Result{
		Code: errs.InvalidPayment.Code,
		Msg:  errs.InvalidPayment.Msg,
	}
)
