package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listingWatcherBot/internal/domain/entity"
	"listingWatcherBot/internal/infrastructure/scraper"
)

func newTestServer(t *testing.T, body string, status int, gotQuery *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.RawQuery
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFeedRepository_Fetch_Success(t *testing.T) {
	rssXML := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
	<channel>
		<title>eBay search: 4090</title>
		<item>
			<title>4090 GPU</title>
			<link>https://www.ebay.co.uk/itm/222?_trkparms=abc</link>
			<description>£1,100.00</description>
		</item>
		<item>
			<title>RTX 4080</title>
			<link>https://www.ebay.co.uk/itm/333</link>
		</item>
		<item>
			<title>RTX 4090 no link</title>
		</item>
		<item>
			<link>https://www.ebay.co.uk/itm/444</link>
		</item>
		<item>
			<title>RTX 4090 bad link</title>
			<link>https://www.ebay.co.uk/sch/i.html</link>
		</item>
		<item>
			<title>Zotac rtx 4090</title>
			<link>https://www.ebay.co.uk/itm/555</link>
		</item>
	</channel>
</rss>`

	var gotQuery string
	server := newTestServer(t, rssXML, http.StatusOK, &gotQuery)

	repo := NewFeedRepository(
		scraper.NewClient(5*time.Second, ""),
		Config{SearchURL: server.URL + "/sch/i.html?_nkw=4090", Keyword: "4090"},
		zerolog.Nop(),
	)

	listings, err := repo.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "_nkw=4090&_rss=1", gotQuery)

	assert.Equal(t, "222", listings[0].ID)
	assert.Equal(t, "4090 GPU", listings[0].Title)
	assert.Equal(t, "https://www.ebay.co.uk/itm/222", listings[0].URL)
	assert.Equal(t, entity.SourceRSS, listings[0].Source)
	assert.Nil(t, listings[0].Price)

	assert.Equal(t, "555", listings[1].ID)
}

func TestFeedRepository_Fetch_ErrorStatus(t *testing.T) {
	server := newTestServer(t, "", http.StatusInternalServerError, nil)

	repo := NewFeedRepository(scraper.NewClient(5*time.Second, ""), Config{SearchURL: server.URL, Keyword: "4090"}, zerolog.Nop())

	_, err := repo.Fetch(context.Background())
	assert.ErrorIs(t, err, entity.ErrFetch)
}

func TestFeedRepository_Fetch_InvalidXML(t *testing.T) {
	server := newTestServer(t, "this is not a feed", http.StatusOK, nil)

	repo := NewFeedRepository(scraper.NewClient(5*time.Second, ""), Config{SearchURL: server.URL, Keyword: "4090"}, zerolog.Nop())

	_, err := repo.Fetch(context.Background())
	assert.ErrorIs(t, err, entity.ErrParse)
}

func TestFeedRepository_Source(t *testing.T) {
	repo := NewFeedRepository(scraper.NewClient(0, ""), Config{}, zerolog.Nop())
	assert.Equal(t, entity.SourceRSS, repo.Source())
}
