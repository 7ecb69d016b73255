package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics содержит метрики обработки заказов.
type OrderMetrics struct {
	// Счётчики операций
	ordersCreated      prometheus.Counter
	validationFailures *prometheus.CounterVec
	emailsSimulated    *prometheus.CounterVec

	// Гистограммы времени выполнения
	createDuration prometheus.Histogram
	pdfDuration    prometheus.Histogram
}

// NewOrderMetrics создаёт и регистрирует метрики заказов.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orderentry_orders_created_total",
			Help: "Total number of orders successfully created",
		}),
		validationFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orderentry_order_validation_failures_total",
			Help: "Total number of rejected order submissions by reason",
		}, []string{"reason"}),
		emailsSimulated: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orderentry_emails_simulated_total",
			Help: "Total number of simulated confirmation deliveries by result",
		}, []string{"result"}),
		createDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "orderentry_order_create_duration_seconds",
			Help:    "Duration of order create requests in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		pdfDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "orderentry_pdf_render_duration_seconds",
			Help:    "Duration of confirmation PDF rendering in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *OrderMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordValidationFailure увеличивает счётчик отклонённых заказов по причине.
func (m *OrderMetrics) RecordValidationFailure(reason string) {
	m.validationFailures.WithLabelValues(reason).Inc()
}

// RecordEmailSimulated фиксирует результат симулированной доставки.
func (m *OrderMetrics) RecordEmailSimulated(result string) {
	m.emailsSimulated.WithLabelValues(result).Inc()
}

// RecordCreateDuration записывает длительность создания заказа.
func (m *OrderMetrics) RecordCreateDuration(duration time.Duration) {
	m.createDuration.Observe(duration.Seconds())
}

// RecordPDFDuration записывает длительность генерации PDF.
func (m *OrderMetrics) RecordPDFDuration(duration time.Duration) {
	m.pdfDuration.Observe(duration.Seconds())
}
