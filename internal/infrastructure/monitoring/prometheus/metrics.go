package prometheus

import "github.com/prometheus/client_golang/prometheus"

// StudioMetrics holds every metric the prediction pipeline records.
type StudioMetrics struct {
	// SubmissionsTotal counts submissions by terminal outcome: "ok" or the
	// error code that aborted it (SUB_001 ... SUB_005).
	SubmissionsTotal *prometheus.CounterVec

	// SubmissionLigands observes how many identifiers each submission carried.
	SubmissionLigands *prometheus.HistogramVec

	// SubmissionDuration observes the full normalize→score→build time.
	SubmissionDuration *prometheus.HistogramVec

	// ExportBytes observes the size of produced export artifacts, by format
	// ("csv" | "archive").
	ExportBytes *prometheus.HistogramVec

	// HTTPRequestsTotal counts HTTP requests by method, path, and status code.
	HTTPRequestsTotal *prometheus.CounterVec
}

// Default buckets.  Submissions are interactive molecule counts, so both the
// size and duration distributions are narrow.
var (
	DefaultLigandBuckets   = []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000}
	DefaultDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	DefaultSizeBuckets     = []float64{100, 1000, 10000, 100000, 1000000, 10000000}
)

// NewStudioMetrics registers all pipeline metrics on the given collector.
func NewStudioMetrics(c MetricsCollector) *StudioMetrics {
	return &StudioMetrics{
		SubmissionsTotal:   c.RegisterCounter("submissions_total", "Submissions by outcome", "outcome"),
		SubmissionLigands:  c.RegisterHistogram("submission_ligands", "Identifiers per submission", DefaultLigandBuckets, "source"),
		SubmissionDuration: c.RegisterHistogram("submission_duration_seconds", "Submission pipeline duration", DefaultDurationBuckets),
		ExportBytes:        c.RegisterHistogram("export_bytes", "Export artifact size", DefaultSizeBuckets, "format"),
		HTTPRequestsTotal:  c.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code"),
	}
}
