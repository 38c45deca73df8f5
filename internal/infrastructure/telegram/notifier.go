package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"

	"listingWatcherBot/internal/domain/entity"
	"listingWatcherBot/internal/domain/repository"
)

type Config struct {
	Token  string
	ChatID string
	// APIURL overrides the Bot API endpoint; empty means the public one.
	APIURL         string
	DisablePreview bool
	MaxPermits     int
	RefillInterval time.Duration
}

// chatUsername addresses public channels as "@name".
type chatUsername string

func (c chatUsername) Recipient() string { return string(c) }

type notifier struct {
	bot            *tele.Bot
	chat           tele.Recipient
	disablePreview bool
	limiter        *rate.Limiter
}

func NewNotifier(cfg Config) (repository.NotifierRepository, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	if strings.TrimSpace(cfg.ChatID) == "" {
		return nil, errors.New("telegram chat id is empty")
	}

	maxPermits := cfg.MaxPermits
	if maxPermits <= 0 {
		maxPermits = 3
	}
	refillInterval := cfg.RefillInterval
	if refillInterval <= 0 {
		refillInterval = time.Second
	}

	// Offline skips the getMe round trip so startup does not depend on the network.
	b, err := tele.NewBot(tele.Settings{
		URL:     cfg.APIURL,
		Token:   cfg.Token,
		Client:  &http.Client{Timeout: 30 * time.Second},
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &notifier{
		bot:            b,
		chat:           parseChat(cfg.ChatID),
		disablePreview: cfg.DisablePreview,
		limiter:        rate.NewLimiter(rate.Every(refillInterval), maxPermits),
	}, nil
}

// parseChat prefers a numeric chat id and falls back to the raw value.
func parseChat(chatID string) tele.Recipient {
	chatID = strings.TrimSpace(chatID)
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return tele.ChatID(id)
	}
	return chatUsername(chatID)
}

func (n *notifier) Send(ctx context.Context, msg *entity.Message) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter error: %w", entity.ErrNotify, err)
	}

	_, err := n.bot.Send(n.chat, msg.Text, &tele.SendOptions{
		DisableWebPagePreview: n.disablePreview,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to send telegram message: %w", entity.ErrNotify, err)
	}

	return nil
}
