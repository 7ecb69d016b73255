// Package httpsvc реализует HTTP/JSON API сервиса ввода заказов поверх
// доменного репозитория, расчёта стоимости и симулятора уведомлений.
package httpsvc

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-entry/internal/domain"
	"github.com/vladislavdragonenkov/order-entry/internal/metrics"
	"github.com/vladislavdragonenkov/order-entry/internal/notify"
	"github.com/vladislavdragonenkov/order-entry/internal/pricing"
)

// OrderService связывает HTTP-обработчики с зависимостями.
type OrderService struct {
	repo    domain.OrderRepository
	catalog domain.ProductCatalog
	rates   domain.ExchangeRateTable
	sender  notify.Sender
	metrics *metrics.OrderMetrics
	logger  *log.Entry

	renderHTML func(pricing.Document) (string, error)
}

// NewOrderService конструирует сервис с зависимостями.
func NewOrderService(
	repo domain.OrderRepository,
	catalog domain.ProductCatalog,
	rates domain.ExchangeRateTable,
	sender notify.Sender,
	orderMetrics *metrics.OrderMetrics,
	logger *log.Entry,
) *OrderService {
	if logger == nil {
		logger = log.WithField("component", "order-service")
	}
	return &OrderService{
		repo:       repo,
		catalog:    catalog,
		rates:      rates,
		sender:     sender,
		metrics:    orderMetrics,
		logger:     logger,
		renderHTML: pricing.RenderHTML,
	}
}

// Router собирает маршруты API.
func (s *OrderService) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/order", s.handleCreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}/confirmation", s.handleConfirmation).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}/pdf", s.handleOrderPDF).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}/email", s.handleEmailOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/exchange-rates", s.handleExchangeRates).Methods(http.MethodGet)
	r.HandleFunc("/api/products", s.handleProducts).Methods(http.MethodGet)
	return r
}

// handleCreateOrder валидирует и сохраняет заказ, затем возвращает
// подтверждение: расчёт по позициям и HTML-фрагмент. Валидация выполняется
// до любого обращения к хранилищу.
func (s *OrderService) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	draft := req.toDraft()
	if err := domain.ValidateOrder(draft, s.catalog); err != nil {
		s.metrics.RecordValidationFailure(validationReason(err))
		badRequest(w, err.Error())
		return
	}

	order, err := s.repo.Create(r.Context(), domain.Order{
		CustomerName: draft.CustomerName,
		Currency:     draft.Currency,
		CreatedAt:    time.Now().UTC(),
		Items:        draft.Items,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to persist order")
		internalError(w, "failed to persist order")
		return
	}

	// Заказ зафиксирован: счётчик увеличивается до рендеринга, чтобы сбой
	// рендеринга не занижал число созданных заказов.
	s.metrics.RecordOrderCreated()

	priced := pricing.PriceOrder(order, s.catalog, s.rates)
	html, err := s.renderHTML(pricing.BuildDocument(priced))
	if err != nil {
		// Заказ уже зафиксирован; ошибка рендеринга его не откатывает.
		s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to render confirmation")
		internalError(w, "failed to render confirmation")
		return
	}

	s.metrics.RecordCreateDuration(time.Since(started))

	writeJSON(w, http.StatusCreated, createOrderResponse{
		Order:            toOrderPayload(order),
		Pricing:          toPricingPayload(priced),
		ConfirmationHTML: html,
	})
}

func (s *OrderService) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.repo.List(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list orders")
		internalError(w, "failed to list orders")
		return
	}

	result := make([]orderPayload, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderPayload(order))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *OrderService) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := s.loadOrder(w, r, "GetOrder")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toOrderPayload(order))
}

// handleConfirmation перерисовывает HTML-фрагмент подтверждения для
// сохранённого заказа.
func (s *OrderService) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	order, ok := s.loadOrder(w, r, "Confirmation")
	if !ok {
		return
	}

	priced := pricing.PriceOrder(order, s.catalog, s.rates)
	html, err := s.renderHTML(pricing.BuildDocument(priced))
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to render confirmation")
		internalError(w, "failed to render confirmation")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleOrderPDF отдаёт постраничный документ подтверждения. Временный файл
// удаляется после ответа фоновой best-effort задачей, ответ от неё не зависит.
func (s *OrderService) handleOrderPDF(w http.ResponseWriter, r *http.Request) {
	order, ok := s.loadOrder(w, r, "OrderPDF")
	if !ok {
		return
	}

	doc := pricing.BuildDocument(pricing.PriceOrder(order, s.catalog, s.rates))

	started := time.Now()
	data, err := pricing.RenderPDF(doc)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to render pdf")
		internalError(w, "failed to render pdf")
		return
	}
	s.metrics.RecordPDFDuration(time.Since(started))

	tmp, err := os.CreateTemp("", "order-confirmation-*.pdf")
	if err == nil {
		if _, werr := tmp.Write(data); werr != nil {
			s.logger.WithError(werr).Warn("failed to write pdf temp file")
		}
		_ = tmp.Close()
		defer func(path string) {
			go func() {
				if rmErr := os.Remove(path); rmErr != nil {
					s.logger.WithError(rmErr).WithField("path", path).Warn("failed to remove pdf temp file")
				}
			}()
		}(tmp.Name())
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.FileName()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleEmailOrder запускает симулятор доставки. Неверный адрес отклоняется
// до генерации документа; неудача доставки никогда не откатывает заказ.
func (s *OrderService) handleEmailOrder(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("email")
	if !notify.ValidAddress(address) {
		writeJSON(w, http.StatusBadRequest, errorPayload{
			Error:  "invalid_address",
			Detail: domain.ErrInvalidEmailAddress.Error(),
		})
		return
	}

	order, ok := s.loadOrder(w, r, "EmailOrder")
	if !ok {
		return
	}

	doc := pricing.BuildDocument(pricing.PriceOrder(order, s.catalog, s.rates))
	delivery, err := s.sender.Send(r.Context(), order, doc, address)
	if err != nil {
		s.metrics.RecordEmailSimulated("failed")
		if errors.Is(err, domain.ErrInvalidEmailAddress) {
			writeJSON(w, http.StatusBadRequest, errorPayload{Error: "invalid_address", Detail: err.Error()})
			return
		}
		s.logger.WithError(err).WithField("order_id", order.ID).Error("simulated delivery failed")
		internalError(w, "failed to deliver confirmation")
		return
	}

	s.metrics.RecordEmailSimulated("sent")
	writeJSON(w, http.StatusOK, emailResponse{
		Note:     "delivery simulated, no real email was sent",
		Delivery: delivery,
	})
}

// handleExchangeRates отдаёт статическую таблицу курсов.
func (s *OrderService) handleExchangeRates(w http.ResponseWriter, _ *http.Request) {
	rates := make(map[string]float64, len(s.rates))
	for currency, rate := range s.rates {
		rates[string(currency)] = rate
	}
	writeJSON(w, http.StatusOK, rates)
}

// handleProducts отдаёт каталог товаров, отсортированный по названию.
func (s *OrderService) handleProducts(w http.ResponseWriter, _ *http.Request) {
	type productPayload struct {
		Name      string  `json:"name"`
		BasePrice float64 `json:"base_price"`
		Currency  string  `json:"currency"`
	}

	products := make([]productPayload, 0, len(s.catalog))
	for name, price := range s.catalog {
		products = append(products, productPayload{
			Name:      name,
			BasePrice: price,
			Currency:  string(domain.DefaultCurrency),
		})
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	writeJSON(w, http.StatusOK, products)
}

// loadOrder разбирает {id} из пути и загружает заказ, сам отвечая клиенту
// при ошибке.
func (s *OrderService) loadOrder(w http.ResponseWriter, r *http.Request, operation string) (domain.Order, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		notFound(w, domain.ErrOrderNotFound.Error())
		return domain.Order{}, false
	}

	order, err := s.repo.Get(r.Context(), id)
	if err == nil {
		return order, true
	}

	if errors.Is(err, domain.ErrOrderNotFound) {
		notFound(w, domain.ErrOrderNotFound.Error())
		return domain.Order{}, false
	}

	s.logger.WithError(err).WithFields(log.Fields{
		"operation": operation,
		"order_id":  id,
	}).Error("failed to load order")
	internalError(w, "failed to load order")
	return domain.Order{}, false
}

// validationReason приводит ошибку валидации к стабильной метке метрики.
func validationReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyCustomerName):
		return "empty_customer_name"
	case errors.Is(err, domain.ErrCustomerNameChars):
		return "invalid_name_chars"
	case errors.Is(err, domain.ErrEmptyOrder):
		return "empty_order"
	case errors.Is(err, domain.ErrTooManyItems):
		return "too_many_items"
	case errors.Is(err, domain.ErrEmptyProductName):
		return "empty_product_name"
	case errors.Is(err, domain.ErrUnknownProduct):
		return "unknown_product"
	case errors.Is(err, domain.ErrQuantityNotPositive):
		return "quantity_not_positive"
	case errors.Is(err, domain.ErrDuplicateProduct):
		return "duplicate_product"
	case errors.Is(err, domain.ErrQuantityOverflow):
		return "quantity_overflow"
	case errors.Is(err, domain.ErrUnsupportedCurrency):
		return "unsupported_currency"
	default:
		return "other"
	}
}
