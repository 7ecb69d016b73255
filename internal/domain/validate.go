package domain

import (
	"strings"
	"unicode"
)

// ValidateOrder проверяет черновик заказа и возвращает первую найденную
// ошибку в порядке объявления полей: имя -> список позиций -> каждая
// позиция -> агрегатные ограничения -> валюта. Функция чистая: без
// побочных эффектов и I/O, один и тот же вход даёт один и тот же результат.
func ValidateOrder(draft OrderDraft, catalog ProductCatalog) error {
	if err := validateCustomerName(draft.CustomerName); err != nil {
		return err
	}

	if len(draft.Items) == 0 {
		return ErrEmptyOrder
	}
	if len(draft.Items) > MaxOrderItems {
		return ErrTooManyItems
	}

	for _, item := range draft.Items {
		if err := validateLineItem(item, catalog); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(draft.Items))
	for _, item := range draft.Items {
		if _, ok := seen[item.ProductName]; ok {
			return ErrDuplicateProduct
		}
		seen[item.ProductName] = struct{}{}
	}

	// Лимит проверяется на бегущей сумме: каждое слагаемое уже ограничено
	// лимитом, поэтому сумма не может переполнить int64 до срабатывания
	// проверки.
	var quantityTotal int64
	for _, item := range draft.Items {
		if item.Quantity > MaxQuantityTotal {
			return ErrQuantityOverflow
		}
		quantityTotal += item.Quantity
		if quantityTotal > MaxQuantityTotal {
			return ErrQuantityOverflow
		}
	}

	if !SupportedCurrency(draft.Currency) {
		return ErrUnsupportedCurrency
	}

	return nil
}

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyCustomerName
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return ErrCustomerNameChars
		}
	}
	return nil
}

func validateLineItem(item LineItem, catalog ProductCatalog) error {
	if strings.TrimSpace(item.ProductName) == "" {
		return ErrEmptyProductName
	}
	if !catalog.Contains(item.ProductName) {
		return ErrUnknownProduct
	}
	if item.Quantity <= 0 {
		return ErrQuantityNotPositive
	}
	return nil
}
