package validators

import (
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// Register installs the custom rules used by the proposal schema.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("finite", Finite)
}

// Finite rejects NaN and infinities, which is what a number input yields when
// the browser could not parse what the user typed.
func Finite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		log.Warnf("validator 'finite' applied to non-numeric type: %s", field.Kind().String())
		return false
	}
}
