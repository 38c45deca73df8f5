package rss

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"listingWatcherBot/internal/domain/entity"
	"listingWatcherBot/internal/domain/repository"
	"listingWatcherBot/internal/infrastructure/scraper"
)

type Config struct {
	// SearchURL is the HTML search page; the feed URL is derived from it.
	SearchURL string
	Keyword   string
}

type feedRepository struct {
	client  *scraper.Client
	parser  *gofeed.Parser
	feedURL string
	keyword string
	log     zerolog.Logger
}

func NewFeedRepository(client *scraper.Client, cfg Config, log zerolog.Logger) repository.ListingRepository {
	return &feedRepository{
		client:  client,
		parser:  gofeed.NewParser(),
		feedURL: entity.DeriveRSSURL(cfg.SearchURL),
		keyword: cfg.Keyword,
		log:     log.With().Str("source", entity.SourceRSS.String()).Logger(),
	}
}

func (r *feedRepository) Source() entity.Source {
	return entity.SourceRSS
}

func (r *feedRepository) Fetch(ctx context.Context) ([]entity.Listing, error) {
	body, err := r.client.Get(ctx, r.feedURL)
	if err != nil {
		return nil, err
	}

	feed, err := r.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse RSS feed: %w", entity.ErrParse, err)
	}

	listings := make([]entity.Listing, 0, len(feed.Items))

	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			r.log.Debug().Str("title", title).Str("link", link).Msg("skipping incomplete item")
			continue
		}

		if !entity.MatchesKeyword(title, r.keyword) {
			continue
		}

		id, ok := entity.ExtractID(link)
		if !ok {
			continue
		}

		// The feed does not carry a structured price.
		listings = append(listings, entity.NewListing(id, title, nil, entity.CanonicalURL(link), entity.SourceRSS))
	}

	return listings, nil
}
