package safety

import (
	"errors"
	"fmt"
	"math"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// RangeError is returned when a measured value is outside of its
// allowed range.
func RangeError(param Parameter, val, min, max float64) error {
	msg := "Parameter <em>%s</em> has value %v outside of the allowed range %s"
	rng := fmt.Sprintf("[%v, %v]", min, max)
	if math.IsInf(max, 1) {
		rng = fmt.Sprintf(">= %v", min)
	}
	vars := []any{string(param), val, rng}
	return &gn.Error{
		Code: errcode.ValidationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("invalid %s: %v is outside of %s",
			param, val, rng),
	}
}

// NotANumberError is returned for NaN or infinite measurements.
func NotANumberError(param Parameter) error {
	msg := "Parameter <em>%s</em> is not a finite number"
	vars := []any{string(param)}
	return &gn.Error{
		Code: errcode.ValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid %s: not a finite number", param),
	}
}

// InvalidField returns the parameter named by a validation error, or an
// empty string if err is not a validation error.
func InvalidField(err error) Parameter {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) ||
		gnErr.Code != errcode.ValidationError || len(gnErr.Vars) == 0 {
		return ""
	}
	s, _ := gnErr.Vars[0].(string)
	return Parameter(s)
}
