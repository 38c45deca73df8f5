package application

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"listingWatcherBot/internal/domain/entity"
	"listingWatcherBot/internal/domain/repository"
	"listingWatcherBot/internal/infrastructure/metrics"
)

type WatchConfig struct {
	Keyword  string
	Currency string
	// SeenMax caps the seen set; 0 keeps every ID forever.
	SeenMax           int
	NotifyFetchErrors bool
}

// CycleReport summarises one RunOnce pass.
type CycleReport struct {
	Seen         int
	Fetched      map[entity.Source]int
	FetchErrors  int
	New          int
	Notified     int
	NotifyErrors int
	Saved        bool
}

type WatchService struct {
	sources  []repository.ListingRepository
	seenRepo repository.SeenRepository
	notifier repository.NotifierRepository
	cfg      WatchConfig
	metrics  metrics.Recorder
	log      zerolog.Logger
}

// NewWatchService takes sources in priority order: earlier sources win ties.
func NewWatchService(
	sources []repository.ListingRepository,
	seenRepo repository.SeenRepository,
	notifier repository.NotifierRepository,
	cfg WatchConfig,
	recorder metrics.Recorder,
	log zerolog.Logger,
) *WatchService {
	if recorder == nil {
		recorder = metrics.NewNopRecorder()
	}
	return &WatchService{
		sources:  sources,
		seenRepo: seenRepo,
		notifier: notifier,
		cfg:      cfg,
		metrics:  recorder,
		log:      log,
	}
}

// RunOnce performs one fetch, merge and notify pass. Every failure is
// recovered locally and reflected in the report.
func (s *WatchService) RunOnce(ctx context.Context) CycleReport {
	start := time.Now()
	defer func() { s.metrics.CycleCompleted(time.Since(start)) }()

	report := CycleReport{Fetched: make(map[entity.Source]int, len(s.sources))}

	seen := s.loadSeen(ctx)
	report.Seen = seen.Len()
	s.log.Info().Int("count", seen.Len()).Msg("loaded seen ids")

	results := make([][]entity.Listing, 0, len(s.sources))
	for _, src := range s.sources {
		listings, err := src.Fetch(ctx)
		if err != nil {
			report.FetchErrors++
			s.handleFetchError(ctx, src.Source(), err)
			continue
		}
		report.Fetched[src.Source()] = len(listings)
		s.metrics.ListingsFetched(src.Source(), len(listings))
		s.log.Info().Str("source", src.Source().String()).Int("count", len(listings)).Msg("fetched listings")
		results = append(results, listings)
	}

	merged := Merge(results...)
	if merged.Len() == 0 {
		s.log.Info().Msg("no listings this cycle")
		return report
	}

	fresh := SelectNew(merged, seen)
	if len(fresh) == 0 {
		s.log.Info().Msg("no new listings")
		return report
	}
	report.New = len(fresh)
	s.metrics.NewListings(len(fresh))

	for _, l := range fresh {
		seen.Add(l.ID)
	}
	if evicted := seen.Trim(s.cfg.SeenMax); evicted > 0 {
		s.log.Debug().Int("evicted", evicted).Msg("trimmed seen ids")
	}
	s.metrics.SeenSize(seen.Len())

	if err := s.seenRepo.Save(ctx, seen); err != nil {
		s.metrics.StoreFailed("save")
		s.log.Error().Err(err).Msg("failed to save seen ids")
	} else {
		report.Saved = true
	}

	for _, l := range fresh {
		msg := entity.NewMessageFromListing(l, s.cfg.Keyword, s.cfg.Currency)
		if err := s.notifier.Send(ctx, msg); err != nil {
			report.NotifyErrors++
			s.metrics.NotifyFailed()
			s.log.Error().Err(err).Str("id", l.ID).Msg("failed to notify listing")
			continue
		}
		report.Notified++
		s.log.Info().
			Str("id", l.ID).
			Str("title", l.Title).
			Str("source", l.Source.String()).
			Msg("notified listing")
	}

	return report
}

// loadSeen fails open: a missing or unreadable store means an empty set.
func (s *WatchService) loadSeen(ctx context.Context) *entity.SeenSet {
	seen, err := s.seenRepo.Load(ctx)
	if err != nil {
		s.metrics.StoreFailed("load")
		s.log.Warn().Err(err).Msg("failed to load seen ids, starting empty")
	}
	if err != nil || seen == nil {
		seen = entity.NewSeenSet()
	}
	s.metrics.SeenSize(seen.Len())
	return seen
}

func (s *WatchService) handleFetchError(ctx context.Context, source entity.Source, err error) {
	s.metrics.FetchFailed(source)

	event := s.log.Error()
	if errors.Is(err, entity.ErrParse) {
		event = s.log.Warn()
	}
	event.Err(err).Str("source", source.String()).Msg("fetch failed")

	if !s.cfg.NotifyFetchErrors {
		return
	}
	if nerr := s.notifier.Send(ctx, entity.NewFetchFailureMessage(source, err)); nerr != nil {
		s.metrics.NotifyFailed()
		s.log.Error().Err(nerr).Msg("failed to report fetch failure")
	}
}
