package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	FolderEvaluations  *prometheus.CounterVec
	OverallEvaluations *prometheus.CounterVec
	SnapshotFailures   prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		FolderEvaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caredocs_compliance_folder_evaluations_total",
			Help: "Folder status evaluations by resulting status",
		}, []string{"status"}),
		OverallEvaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caredocs_compliance_overall_evaluations_total",
			Help: "Client overall status evaluations by resulting status",
		}, []string{"status"}),
		SnapshotFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caredocs_compliance_snapshot_failures_total",
			Help: "Store snapshot fetches that failed and aborted an evaluation",
		}),
	}
}

func (m *Metrics) ObserveFolderEvaluation(status string) {
	m.FolderEvaluations.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveOverallEvaluation(status string) {
	m.OverallEvaluations.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementSnapshotFailures() {
	m.SnapshotFailures.Inc()
}
