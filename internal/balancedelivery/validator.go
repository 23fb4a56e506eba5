package balancedelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/vergecraft/coinsync/internal/currencyregistry"
)

// ValidCurrency validates a currency id against the registry.
func ValidCurrency(registry *currencyregistry.Registry) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(string); ok {
			_, err := registry.Get(id)
			return err == nil
		}

		return false
	}
}
