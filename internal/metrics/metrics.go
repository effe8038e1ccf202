// Package metrics holds the process-wide Prometheus collectors for seeding
// and the genre cache. HTTP metrics live with the middleware that records them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	seedRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kebab_api_seed_runs_total",
		Help: "Seed attempts by outcome",
	}, []string{"outcome"}) // outcome=already_seeded|no_dataset|inserted|empty_dataset|dataset_error|failed

	songsInsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kebab_api_songs_inserted_total",
		Help: "Total number of songs inserted by the seeder",
	})

	seedDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kebab_api_seed_duration_seconds",
		Help:    "Duration of seed runs that touched the dataset",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
	})

	genreCacheLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kebab_api_genre_cache_loads_total",
		Help: "Genre cache loads by result",
	}, []string{"result"}) // result=success|error

	genreCacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kebab_api_genre_cache_size",
		Help: "Number of genres in the cache after the last successful load",
	})
)

// RecordSeedRun counts one seed attempt. Inserted songs and duration are
// only recorded for runs that reached the dataset.
func RecordSeedRun(outcome string, inserted int, seconds float64) {
	seedRunsTotal.WithLabelValues(outcome).Inc()
	if inserted > 0 {
		songsInsertedTotal.Add(float64(inserted))
	}
	if seconds > 0 {
		seedDuration.Observe(seconds)
	}
}

// RecordGenreLoad counts a genre cache load and tracks the resulting size.
func RecordGenreLoad(n int, err error) {
	if err != nil {
		genreCacheLoadsTotal.WithLabelValues("error").Inc()
		return
	}
	genreCacheLoadsTotal.WithLabelValues("success").Inc()
	genreCacheSize.Set(float64(n))
}
