package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"orderconsole/internal/domain/model"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Validator checks backend payloads and request bodies against their struct tags
// and turns the first failure into a model.ValidationError.
type Validator struct {
	v *validatorv10.Validate
}

// New returns a validator with the status enums registered as tags.
func New() *Validator {
	v := validatorv10.New()

	// report json names, the backend and the UI only know those
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "shipping_status", func(fl validatorv10.FieldLevel) bool {
		return model.ShippingStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "payment_status", func(fl validatorv10.FieldLevel) bool {
		return model.PaymentStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "payment_method", func(fl validatorv10.FieldLevel) bool {
		return model.PaymentMethod(fl.Field().String()).IsValid()
	})
	mustRegister(v, "refund_status", func(fl validatorv10.FieldLevel) bool {
		return model.RefundStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "refund_action", func(fl validatorv10.FieldLevel) bool {
		_, err := model.ParseRefundAction(fl.Field().String())
		return err == nil
	})

	return &Validator{v: v}
}

func mustRegister(v *validatorv10.Validate, tag string, fn validatorv10.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// Struct validates s. Failures come back as *model.ValidationError.
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return &model.ValidationError{
			Field:   fe.Namespace(),
			Message: describe(fe),
		}
	}
	return &model.ValidationError{Message: err.Error()}
}

func describe(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "shipping_status", "payment_status", "payment_method", "refund_status", "refund_action":
		return fmt.Sprintf("unknown value %q", fmt.Sprint(fe.Value()))
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gte":
		return "must be >= " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return fmt.Sprintf("failed %q", fe.Tag())
	}
}
