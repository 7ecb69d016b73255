package domain

import "errors"

var (
	// Ошибка пустого или состоящего из пробелов имени клиента.
	ErrEmptyCustomerName = errors.New("customer_name is required")
	// Ошибка недопустимых символов в имени клиента (разрешены буквы и пробелы).
	ErrCustomerNameChars = errors.New("customer_name must contain only letters and spaces")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrEmptyOrder = errors.New("order must contain at least one line item")
	// Ошибка превышения лимита позиций в заказе.
	ErrTooManyItems = errors.New("order exceeds line item limit")
	// Ошибка пустого названия товара в позиции.
	ErrEmptyProductName = errors.New("product_name is required")
	// Ошибка товара, отсутствующего в каталоге.
	ErrUnknownProduct = errors.New("product is not in the catalog")
	// Ошибка неположительного количества в позиции.
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	// Ошибка повторяющегося названия товара внутри заказа.
	ErrDuplicateProduct = errors.New("duplicate product name detected")
	// Ошибка превышения суммарного количества по заказу.
	ErrQuantityOverflow = errors.New("total quantity exceeds limit")
	// Ошибка неподдерживаемого кода валюты.
	ErrUnsupportedCurrency = errors.New("unsupported currency code")

	// ErrOrderNotFound возвращается, если заказ не найден в хранилище.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderConflict сигнализирует о коллизии идентификаторов при сохранении.
	ErrOrderConflict = errors.New("order id conflict")

	// ErrInvalidEmailAddress — адрес получателя не похож на email.
	ErrInvalidEmailAddress = errors.New("invalid email address")
)

// validationErrors перечисляет ошибки, исправимые на стороне клиента.
var validationErrors = []error{
	ErrEmptyCustomerName,
	ErrCustomerNameChars,
	ErrEmptyOrder,
	ErrTooManyItems,
	ErrEmptyProductName,
	ErrUnknownProduct,
	ErrQuantityNotPositive,
	ErrDuplicateProduct,
	ErrQuantityOverflow,
	ErrUnsupportedCurrency,
}

// IsValidationError проверяет, относится ли ошибка к нарушениям валидации заказа.
func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
