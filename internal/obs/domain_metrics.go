package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// InquirySubmissionsTotal counts inquiry submission outcomes by inquiry type.
	InquirySubmissionsTotal *prometheus.CounterVec
	// MailDispatchTotal counts outbound email dispatch outcomes.
	MailDispatchTotal *prometheus.CounterVec
	// MailDispatchLatency records SMTP dispatch latency in milliseconds.
	MailDispatchLatency *prometheus.HistogramVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		InquirySubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inquiry_submissions_total",
			Help:      "Count of inquiry submission outcomes by inquiry type.",
		}, []string{"type", "result"})
		MailDispatchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mail_dispatch_total",
			Help:      "Count of outbound email dispatch outcomes.",
		}, []string{"message", "result"})
		MailDispatchLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mail_dispatch_duration_ms",
			Help:      "Latency of SMTP dispatch attempts in milliseconds.",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"message"})

		mustRegisterCollector(reg, InquirySubmissionsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				InquirySubmissionsTotal = v
			}
		})
		mustRegisterCollector(reg, MailDispatchTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				MailDispatchTotal = v
			}
		})
		mustRegisterCollector(reg, MailDispatchLatency, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.HistogramVec); ok {
				MailDispatchLatency = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register metric: %w", err))
	}
}
