package validators

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// Register adds the salon tags to gin's binding validator:
//
//	hhmm  "15:04" wall-clock label
//	ymd   "2006-01-02" calendar date
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("binding validator is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("hhmm", isHHMM); err != nil {
		return err
	}
	return v.RegisterValidation("ymd", isYMD)
}

func isHHMM(fl validator.FieldLevel) bool {
	_, err := domain.ParseLabel(fl.Field().String())
	return err == nil
}

func isYMD(fl validator.FieldLevel) bool {
	_, err := domain.CalendarDateUTC(fl.Field().String())
	return err == nil
}
