// Package metrics defines the Prometheus collectors of the document manager.
//
// Collectors are registered with the default registry on package init and
// exposed by the HTTP handler on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route pattern, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docmanager_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks request latency by route pattern and method.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docmanager_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// AuthAttemptsTotal counts login and signup attempts by outcome.
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docmanager_auth_attempts_total",
			Help: "Total number of login and signup attempts",
		},
		[]string{"action", "result"},
	)

	// DocumentsCreatedTotal counts created documents by kind ("link" or "file").
	DocumentsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docmanager_documents_created_total",
			Help: "Total number of documents created",
		},
		[]string{"kind"},
	)

	// DocumentsDeletedTotal counts deleted documents.
	DocumentsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docmanager_documents_deleted_total",
			Help: "Total number of documents deleted",
		},
	)

	// UploadedBytesTotal sums the size of stored uploads.
	UploadedBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docmanager_uploaded_bytes_total",
			Help: "Total number of bytes stored by uploads",
		},
	)

	// UploadsRejectedTotal counts rejected uploads by reason.
	UploadsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docmanager_uploads_rejected_total",
			Help: "Total number of rejected uploads",
		},
		[]string{"reason"},
	)

	// SessionsCleanedTotal counts expired sessions removed by the cleanup worker.
	SessionsCleanedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docmanager_sessions_cleaned_total",
			Help: "Total number of expired sessions removed",
		},
	)

	// FoldersRepairedTotal counts user folders ensured by the repair sweep.
	FoldersRepairedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docmanager_folders_repaired_total",
			Help: "Total number of user folders ensured by the repair sweep",
		},
	)
)

// Document kinds.
const (
	KindLink = "link"
	KindFile = "file"
)

// Auth actions and results.
const (
	ActionLogin  = "login"
	ActionSignup = "signup"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

// RecordHTTPRequest records one handled request.
func RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordAuthAttempt records a login or signup outcome.
func RecordAuthAttempt(action string, ok bool) {
	result := ResultFailure
	if ok {
		result = ResultSuccess
	}
	AuthAttemptsTotal.WithLabelValues(action, result).Inc()
}

// RecordDocumentCreated records a new document; size is ignored for links.
func RecordDocumentCreated(kind string, size int64) {
	DocumentsCreatedTotal.WithLabelValues(kind).Inc()
	if kind == KindFile && size > 0 {
		UploadedBytesTotal.Add(float64(size))
	}
}

// RecordUploadRejected records an upload rejected for reason.
func RecordUploadRejected(reason string) {
	UploadsRejectedTotal.WithLabelValues(reason).Inc()
}
