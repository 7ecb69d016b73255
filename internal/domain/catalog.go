package domain

// ProductCatalog — статический справочник: название товара -> базовая цена
// в базовой валюте (CAD). Заполняется один раз на старте процесса.
type ProductCatalog map[string]float64

// ExchangeRateTable — статическая таблица курсов: валюта -> множитель
// относительно базовой валюты.
type ExchangeRateTable map[Currency]float64

// DefaultCatalog возвращает предопределённый каталог товаров.
func DefaultCatalog() ProductCatalog {
	return ProductCatalog{
		"Laptop":     1200.00,
		"Mouse":      25.00,
		"Keyboard":   80.00,
		"Monitor":    350.00,
		"Headphones": 120.00,
		"Webcam":     95.00,
		"USB Cable":  12.00,
		"Desk Lamp":  45.00,
	}
}

// DefaultRates возвращает статическую таблицу курсов. Курсы фиксированы
// на время жизни процесса, внешние источники не опрашиваются.
func DefaultRates() ExchangeRateTable {
	return ExchangeRateTable{
		CurrencyCAD: 1.0,
		CurrencyUSD: 0.75,
		CurrencyEUR: 0.68,
		CurrencyGBP: 0.59,
	}
}

// BasePrice возвращает базовую цену товара. Для неизвестного товара
// возвращается 0 — осознанный fallback, а не ошибка: на пути запроса
// каталог уже проверен валидацией.
func (c ProductCatalog) BasePrice(productName string) float64 {
	return c[productName]
}

// Contains сообщает, есть ли товар в каталоге.
func (c ProductCatalog) Contains(productName string) bool {
	_, ok := c[productName]
	return ok
}
