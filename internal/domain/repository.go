package domain

import "context"

// OrderRepository описывает требования к хранилищу заказов.
// Хранилище — единственный источник идентификаторов: Create назначает
// следующий последовательный ID, и конкурентные вызовы никогда не выдают
// один ID дважды.
type OrderRepository interface {
	// Create сохраняет заказ вместе с позициями атомарно и возвращает
	// сохранённую копию с назначенным ID.
	Create(ctx context.Context, order Order) (Order, error)
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id int64) (Order, error)
	// List возвращает все заказы в порядке создания.
	List(ctx context.Context) ([]Order, error)
}
