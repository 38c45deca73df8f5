package metrics

import (
	"time"

	"listingWatcherBot/internal/domain/entity"
)

// Recorder is the hook the watch service reports through.
type Recorder interface {
	CycleCompleted(d time.Duration)
	CyclePanicked()
	FetchFailed(source entity.Source)
	ListingsFetched(source entity.Source, n int)
	NewListings(n int)
	NotifyFailed()
	StoreFailed(op string)
	SeenSize(n int)
}

type prometheusRecorder struct{}

func NewPrometheusRecorder() Recorder {
	return prometheusRecorder{}
}

func (prometheusRecorder) CycleCompleted(d time.Duration) {
	CyclesTotal.Inc()
	CycleDuration.Observe(d.Seconds())
}

func (prometheusRecorder) CyclePanicked() { CyclePanicsTotal.Inc() }

func (prometheusRecorder) FetchFailed(source entity.Source) {
	FetchErrorsTotal.WithLabelValues(source.String()).Inc()
}

func (prometheusRecorder) ListingsFetched(source entity.Source, n int) {
	ListingsFetchedTotal.WithLabelValues(source.String()).Add(float64(n))
}

func (prometheusRecorder) NewListings(n int) { NewListingsTotal.Add(float64(n)) }

func (prometheusRecorder) NotifyFailed() { NotifyErrorsTotal.Inc() }

func (prometheusRecorder) StoreFailed(op string) {
	StoreErrorsTotal.WithLabelValues(op).Inc()
}

func (prometheusRecorder) SeenSize(n int) { SeenIDs.Set(float64(n)) }

type nopRecorder struct{}

func NewNopRecorder() Recorder { return nopRecorder{} }

func (nopRecorder) CycleCompleted(time.Duration)       {}
func (nopRecorder) CyclePanicked()                     {}
func (nopRecorder) FetchFailed(entity.Source)          {}
func (nopRecorder) ListingsFetched(entity.Source, int) {}
func (nopRecorder) NewListings(int)                    {}
func (nopRecorder) NotifyFailed()                      {}
func (nopRecorder) StoreFailed(string)                 {}
func (nopRecorder) SeenSize(int)                       {}
