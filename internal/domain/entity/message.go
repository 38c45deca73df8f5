package entity

import (
	"fmt"
	"strings"
)

type Message struct {
	Text string
}

func NewMessage(text string) *Message {
	return &Message{Text: text}
}

// NewMessageFromListing renders the new-listing notification.
func NewMessageFromListing(l Listing, keyword, currency string) *Message {
	lines := []string{
		fmt.Sprintf("🆕 New %s Listing", keyword),
		"Source: " + l.Source.Label(),
		"Title: " + l.Title,
	}
	if l.HasPrice() {
		lines = append(lines, "Price: "+currency+FormatPrice(*l.Price))
	}
	lines = append(lines, "Link: "+l.URL)
	return NewMessage(strings.Join(lines, "\n"))
}

// NewFetchFailureMessage reports a degraded source.
func NewFetchFailureMessage(source Source, err error) *Message {
	return NewMessage(fmt.Sprintf("⚠️ %s fetch failed: %v", source.Label(), err))
}
