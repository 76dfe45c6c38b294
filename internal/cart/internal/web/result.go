package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/vraxia/storefront/internal/cart/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
)
