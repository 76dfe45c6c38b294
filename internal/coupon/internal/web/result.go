package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vraxia/storefront/internal/coupon/internal/errs"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}
