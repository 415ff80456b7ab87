package usecase

import (
	"errors"
	"fmt"
	"pedido_venda/internal/domain/entities"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrMissingRequiredFields = errors.New("missing required fields")

// identification holds the fields every exported document must carry.
type identification struct {
	Salesperson string `json:"salesperson" validate:"required"`
	OrderCode   string `json:"order_code" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequired checks that salesperson and order code are filled in.
// Whitespace-only values count as missing. The error names the missing
// fields and wraps ErrMissingRequiredFields.
func ValidateRequired(o entities.Order) error {
	id := identification{
		Salesperson: strings.TrimSpace(o.Salesperson),
		OrderCode:   strings.TrimSpace(o.OrderCode),
	}
	err := validate.Struct(id)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(fields, ","))
}
