package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elixir_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "elixir_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elixir_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	OTPVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elixir_otp_verifications_total",
			Help: "Total number of OTP verification attempts",
		},
		[]string{"result"},
	)

	SessionsSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "elixir_sessions_saved_total",
			Help: "Total number of sessions saved",
		},
	)

	SessionsClearedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "elixir_sessions_cleared_total",
			Help: "Total number of sessions cleared (logouts)",
		},
	)

	BookingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elixir_bookings_created_total",
			Help: "Total number of bookings created",
		},
		[]string{"status"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "elixir_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordLogin(result string) {
	LoginsTotal.WithLabelValues(result).Inc()
}

func RecordOTPVerification(result string) {
	OTPVerificationsTotal.WithLabelValues(result).Inc()
}

func RecordSessionSaved() {
	SessionsSavedTotal.Inc()
}

func RecordSessionCleared() {
	SessionsClearedTotal.Inc()
}

func RecordBooking(status string) {
	BookingsCreatedTotal.WithLabelValues(status).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}
