package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessageFromListing_WithPrice(t *testing.T) {
	price := 1299.99
	l := NewListing("111", "RTX 4090 Founders Edition", &price, "https://www.ebay.co.uk/itm/111", SourceHTMLTop3)

	msg := NewMessageFromListing(l, "4090", "£")

	want := "🆕 New 4090 Listing\n" +
		"Source: Top 3 search results\n" +
		"Title: RTX 4090 Founders Edition\n" +
		"Price: £1299.99\n" +
		"Link: https://www.ebay.co.uk/itm/111"
	assert.Equal(t, want, msg.Text)
}

func TestNewMessageFromListing_WithoutPrice(t *testing.T) {
	l := NewListing("222", "4090 GPU", nil, "https://www.ebay.co.uk/itm/222", SourceRSS)

	msg := NewMessageFromListing(l, "4090", "£")

	want := "🆕 New 4090 Listing\n" +
		"Source: RSS\n" +
		"Title: 4090 GPU\n" +
		"Link: https://www.ebay.co.uk/itm/222"
	assert.Equal(t, want, msg.Text)
}

func TestNewFetchFailureMessage(t *testing.T) {
	msg := NewFetchFailureMessage(SourceRSS, errors.New("boom"))
	assert.Equal(t, "⚠️ RSS fetch failed: boom", msg.Text)
}
