package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewOrderMetrics(t *testing.T) {
	metrics := NewOrderMetrics()

	if metrics == nil {
		t.Fatal("NewOrderMetrics should not return nil")
	}

	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}

	if metrics.validationFailures == nil {
		t.Error("validationFailures counter vec should not be nil")
	}

	if metrics.emailsSimulated == nil {
		t.Error("emailsSimulated counter vec should not be nil")
	}

	if metrics.createDuration == nil {
		t.Error("createDuration histogram should not be nil")
	}

	if metrics.pdfDuration == nil {
		t.Error("pdfDuration histogram should not be nil")
	}
}

func TestNewOrderMetricsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newOrderMetricsWithRegisterer(reg)
	second := newOrderMetricsWithRegisterer(reg)

	// Повторная регистрация должна переиспользовать существующие коллекторы.
	if first.ordersCreated != second.ordersCreated {
		t.Error("expected the same ordersCreated collector on re-registration")
	}
	if first.validationFailures != second.validationFailures {
		t.Error("expected the same validationFailures collector on re-registration")
	}
}

func TestRecordOrderCreated(t *testing.T) {
	// Create isolated metrics with a custom registry
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordOrderCreated()
	metrics.RecordOrderCreated()

	metric := &dto.Metric{}
	if err := metrics.ordersCreated.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected counter value 2.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordValidationFailure(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordValidationFailure("empty_order")
	metrics.RecordValidationFailure("empty_order")
	metrics.RecordValidationFailure("unknown_product")

	metric := &dto.Metric{}
	counter := metrics.validationFailures.WithLabelValues("empty_order")
	if err := counter.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected counter value 2.0 for empty_order, got %f", metric.Counter.GetValue())
	}

	other := &dto.Metric{}
	otherCounter := metrics.validationFailures.WithLabelValues("unknown_product")
	if err := otherCounter.Write(other); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if other.Counter.GetValue() != 1.0 {
		t.Errorf("expected counter value 1.0 for unknown_product, got %f", other.Counter.GetValue())
	}
}

func TestRecordEmailSimulated(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordEmailSimulated("sent")

	metric := &dto.Metric{}
	counter := metrics.emailsSimulated.WithLabelValues("sent")
	if err := counter.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 1.0 {
		t.Errorf("expected counter value 1.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordDurations(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordCreateDuration(150 * time.Millisecond)
	metrics.RecordPDFDuration(30 * time.Millisecond)

	createMetric := &dto.Metric{}
	if err := metrics.createDuration.Write(createMetric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}

	if createMetric.Histogram.GetSampleCount() != 1 {
		t.Errorf("expected 1 create duration sample, got %d", createMetric.Histogram.GetSampleCount())
	}

	pdfMetric := &dto.Metric{}
	if err := metrics.pdfDuration.Write(pdfMetric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}

	if pdfMetric.Histogram.GetSampleCount() != 1 {
		t.Errorf("expected 1 pdf duration sample, got %d", pdfMetric.Histogram.GetSampleCount())
	}
}
