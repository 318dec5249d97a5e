package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EntriesPersisted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "adminjournal_entries_persisted_total",
		Help: "Total number of journal entries persisted, by backend",
	}, []string{"backend"})
	PersistFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "adminjournal_persist_failures_total",
		Help: "Total number of journal entries a backend failed to persist",
	}, []string{"backend"})
	// Entries the interceptor could not journal. The wrapped admin operation
	// still ran.
	JournalSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "adminjournal_journal_skipped_total",
		Help: "Total number of admin operations that ran without a journal entry",
	}, []string{"reason"})
	EntriesCleared = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "adminjournal_entries_cleared_total",
		Help: "Total number of journal entries removed by retention cleanup",
	})
)

func init() {
	prometheus.MustRegister(EntriesPersisted)
	prometheus.MustRegister(PersistFailures)
	prometheus.MustRegister(JournalSkipped)
	prometheus.MustRegister(EntriesCleared)
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
