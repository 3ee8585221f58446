package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const englishToRussian = "en|ru"

// MyMemoryTranslator translates words through the MyMemory API
type MyMemoryTranslator struct {
	baseURL string
	client  *jsonClient
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
}

// NewMyMemoryTranslator creates a translator; a nil httpClient uses a 10s timeout client
func NewMyMemoryTranslator(baseURL string, httpClient *http.Client, logger *zap.Logger) *MyMemoryTranslator {
	return &MyMemoryTranslator{
		baseURL: baseURL,
		client:  newJSONClient("mymemory", httpClient, logger),
	}
}

// Translate returns the Russian translation of an English word
func (t *MyMemoryTranslator) Translate(ctx context.Context, word string) (string, error) {
	q := url.Values{}
	q.Set("q", word)
	q.Set("langpair", englishToRussian)

	var resp myMemoryResponse
	if err := t.client.getJSON(ctx, t.baseURL+"?"+q.Encode(), &resp); err != nil {
		return "", fmt.Errorf("translate %q: %w", word, err)
	}

	text := strings.TrimSpace(resp.ResponseData.TranslatedText)
	if text == "" {
		return "", fmt.Errorf("translate %q: %w: empty translation", word, ErrMalformedResponse)
	}
	// quota errors come back as 200 with the warning in place of the text
	if strings.HasPrefix(strings.ToUpper(text), "MYMEMORY WARNING") {
		return "", fmt.Errorf("translate %q: quota exceeded: %s", word, text)
	}

	return text, nil
}
