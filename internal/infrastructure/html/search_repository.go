package html

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"listingWatcherBot/internal/domain/entity"
	"listingWatcherBot/internal/domain/repository"
	"listingWatcherBot/internal/infrastructure/scraper"
)

const (
	cardSelector  = ".s-item"
	titleSelector = ".s-item__title"
	linkSelector  = ".s-item__link"
	priceSelector = ".s-item__price"

	defaultLimit = 3
)

// Titles carrying these markers are the marketplace's own placeholders and ads.
var adMarkers = []string{
	"sponsored",
	"shop on ebay",
	"results matching",
}

type Config struct {
	SearchURL string
	Keyword   string
	Limit     int
}

type searchRepository struct {
	client    *scraper.Client
	searchURL string
	keyword   string
	limit     int
	log       zerolog.Logger
}

// NewSearchRepository returns a fetcher for the first accepted listings of
// the search results page.
func NewSearchRepository(client *scraper.Client, cfg Config, log zerolog.Logger) repository.ListingRepository {
	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	return &searchRepository{
		client:    client,
		searchURL: cfg.SearchURL,
		keyword:   cfg.Keyword,
		limit:     limit,
		log:       log.With().Str("source", entity.SourceHTMLTop3.String()).Logger(),
	}
}

func (r *searchRepository) Source() entity.Source {
	return entity.SourceHTMLTop3
}

func (r *searchRepository) Fetch(ctx context.Context) ([]entity.Listing, error) {
	body, err := r.client.Get(ctx, r.searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse html: %w", entity.ErrParse, err)
	}

	return r.collect(doc), nil
}

// collect walks cards in document order until limit listings are accepted.
// Rejected cards do not count toward the limit.
func (r *searchRepository) collect(doc *goquery.Document) []entity.Listing {
	listings := make([]entity.Listing, 0, r.limit)

	doc.Find(cardSelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if listing, ok := r.parseCard(card); ok {
			listings = append(listings, listing)
		}
		return len(listings) < r.limit
	})

	return listings
}

func (r *searchRepository) parseCard(card *goquery.Selection) (entity.Listing, bool) {
	titleSel := card.Find(titleSelector).First()
	if titleSel.Length() == 0 {
		return entity.Listing{}, false
	}

	title := strings.TrimSpace(titleSel.Text())
	if isAdTitle(title) {
		r.log.Debug().Str("title", title).Msg("skipping placeholder card")
		return entity.Listing{}, false
	}
	if !entity.MatchesKeyword(title, r.keyword) {
		return entity.Listing{}, false
	}

	href, ok := card.Find(linkSelector).First().Attr("href")
	if !ok || href == "" {
		return entity.Listing{}, false
	}

	id, ok := entity.ExtractID(href)
	if !ok {
		r.log.Debug().Str("url", href).Msg("no listing id in link")
		return entity.Listing{}, false
	}

	var price *float64
	if priceSel := card.Find(priceSelector).First(); priceSel.Length() > 0 {
		price, _ = entity.ParsePrice(strings.TrimSpace(priceSel.Text()))
	}

	return entity.NewListing(id, title, price, entity.CanonicalURL(href), entity.SourceHTMLTop3), true
}

func isAdTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, marker := range adMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
