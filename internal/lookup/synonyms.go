package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// MaxSynonyms is how many related words are requested per word
const MaxSynonyms = 3

// DatamuseClient looks up synonyms through the Datamuse API
type DatamuseClient struct {
	baseURL string
	client  *jsonClient
}

type datamuseWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// NewDatamuseClient creates a synonym client
func NewDatamuseClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *DatamuseClient {
	return &DatamuseClient{
		baseURL: baseURL,
		client:  newJSONClient("datamuse", httpClient, logger),
	}
}

// Synonyms returns up to MaxSynonyms synonyms of word. An empty list is a valid answer.
func (d *DatamuseClient) Synonyms(ctx context.Context, word string) ([]string, error) {
	q := url.Values{}
	q.Set("rel_syn", word)
	q.Set("max", strconv.Itoa(MaxSynonyms))

	var items []datamuseWord
	if err := d.client.getJSON(ctx, d.baseURL+"?"+q.Encode(), &items); err != nil {
		return nil, fmt.Errorf("synonyms of %q: %w", word, err)
	}

	words := make([]string, 0, len(items))
	for _, item := range items {
		if item.Word == "" {
			continue
		}
		words = append(words, item.Word)
		if len(words) == MaxSynonyms {
			break
		}
	}
	return words, nil
}
