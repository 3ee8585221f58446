package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"englex/internal/domain"

	"go.uber.org/zap"
)

// FactClient fetches trivia from a random-fact API and a number-fact API
type FactClient struct {
	randomURL string
	numberURL string
	random    *jsonClient
	number    *jsonClient
}

type randomFactResponse struct {
	Text string `json:"text"`
}

type numberFactResponse struct {
	Text   string  `json:"text"`
	Number float64 `json:"number"`
	Found  bool    `json:"found"`
}

// NewFactClient creates a fact client
func NewFactClient(randomURL, numberURL string, httpClient *http.Client, logger *zap.Logger) *FactClient {
	return &FactClient{
		randomURL: randomURL,
		numberURL: numberURL,
		random:    newJSONClient("random-fact", httpClient, logger),
		number:    newJSONClient("number-fact", httpClient, logger),
	}
}

// RandomFact returns one random English fact
func (f *FactClient) RandomFact(ctx context.Context) (domain.Fact, error) {
	q := url.Values{}
	q.Set("language", "en")

	var resp randomFactResponse
	if err := f.random.getJSON(ctx, f.randomURL+"?"+q.Encode(), &resp); err != nil {
		return domain.Fact{}, fmt.Errorf("random fact: %w", err)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return domain.Fact{}, fmt.Errorf("random fact: %w: empty text", ErrMalformedResponse)
	}

	return domain.Fact{Title: "Random Fact", Text: text, Emoji: "💡"}, nil
}

// NumberFact returns one trivia fact about a number
func (f *FactClient) NumberFact(ctx context.Context) (domain.Fact, error) {
	var resp numberFactResponse
	if err := f.number.getJSON(ctx, f.numberURL+"?json", &resp); err != nil {
		return domain.Fact{}, fmt.Errorf("number fact: %w", err)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return domain.Fact{}, fmt.Errorf("number fact: %w: empty text", ErrMalformedResponse)
	}

	return domain.Fact{Title: "Number Fact", Text: text, Emoji: "🔢"}, nil
}
