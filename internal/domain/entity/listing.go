package entity

import (
	"strings"
)

type Source int

const (
	SourceHTMLTop3 Source = iota
	SourceRSS
)

func (s Source) String() string {
	switch s {
	case SourceHTMLTop3:
		return "html"
	case SourceRSS:
		return "rss"
	default:
		return "unknown"
	}
}

// Label is the human readable provenance shown in notifications.
func (s Source) Label() string {
	switch s {
	case SourceHTMLTop3:
		return "Top 3 search results"
	case SourceRSS:
		return "RSS"
	default:
		return s.String()
	}
}

type Listing struct {
	ID     string
	Title  string
	Price  *float64
	URL    string
	Source Source
}

func NewListing(id, title string, price *float64, url string, source Source) Listing {
	return Listing{
		ID:     id,
		Title:  title,
		Price:  price,
		URL:    url,
		Source: source,
	}
}

func (l Listing) HasPrice() bool {
	return l.Price != nil
}

// MatchesKeyword reports whether title contains keyword, ignoring case.
func MatchesKeyword(title, keyword string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(keyword))
}

// CanonicalURL drops tracking parameters, which always start at the first "?_".
func CanonicalURL(raw string) string {
	before, _, _ := strings.Cut(raw, "?_")
	return before
}

// DeriveRSSURL returns the RSS flavour of a search page URL.
func DeriveRSSURL(searchURL string) string {
	if strings.Contains(searchURL, "_rss=1") {
		return searchURL
	}
	sep := "?"
	if strings.Contains(searchURL, "?") {
		sep = "&"
	}
	return searchURL + sep + "_rss=1"
}
