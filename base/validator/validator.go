package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/artmint/domain"
)

// SuiAddressTag validates 0x prefixed 32 byte hex ids, short forms like 0x6 included.
const SuiAddressTag = "suiaddr"

// IsValidAddress returns is a Sui address or object id valid or not
func IsValidAddress(address string) bool {
	return domain.Address(address).IsValid()
}

func validateSuiAddress(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return IsValidAddress(field.String())
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(SuiAddressTag, validateSuiAddress); err != nil {
		panic(err)
	}
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
