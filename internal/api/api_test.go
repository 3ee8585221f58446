package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"englex/internal/domain"
	"englex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWords map[string]string

func (s stubWords) GetWordInfo(_ context.Context, word string) *domain.WordEntry {
	return testutil.NewTestEntry(word, s[word])
}

type stubFacts struct {
	lastCount int
}

func (s *stubFacts) Facts(_ context.Context, count int) []domain.Fact {
	s.lastCount = count
	facts := make([]domain.Fact, count)
	for i := range facts {
		facts[i] = domain.Fact{Title: "Random Fact", Text: "fact", Emoji: "💡"}
	}
	return facts
}

func newTestServer(t *testing.T) (*httptest.Server, *stubFacts) {
	t.Helper()
	facts := &stubFacts{}
	h := &Handler{
		Words:      stubWords{"run": "бегать"},
		Facts:      facts,
		FactsCount: 4,
		Logger:     testutil.NewTestLogger(),
	}
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, facts
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetLevels(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/levels")
	require.NoError(t, err)
	defer resp.Body.Close()

	var levels []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&levels))
	assert.Equal(t, []string{"A1", "A2", "B1", "B2"}, levels)
}

func TestGetLevelWords(t *testing.T) {
	tests := []struct {
		name           string
		level          string
		expectedStatus int
		expectedFirst  string
	}{
		{name: "known level", level: "a2", expectedStatus: http.StatusOK, expectedFirst: "weekend"},
		{name: "unknown level", level: "C1", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t)

			resp, err := http.Get(srv.URL + "/api/levels/" + tt.level + "/words")
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedFirst != "" {
				var words []string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&words))
				require.NotEmpty(t, words)
				assert.Equal(t, tt.expectedFirst, words[0])
			}
		})
	}
}

func TestGetWord(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/words/run")
	require.NoError(t, err)
	defer resp.Body.Close()

	var entry domain.WordEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))
	assert.Equal(t, "run", entry.Word)
	assert.Equal(t, "бегать", entry.Translation)
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedResult bool
	}{
		{name: "correct", body: `{"word":"run","answer":" Бегать "}`, expectedStatus: http.StatusOK, expectedResult: true},
		{name: "wrong", body: `{"word":"run","answer":"плавать"}`, expectedStatus: http.StatusOK, expectedResult: false},
		{name: "empty answer", body: `{"word":"run","answer":""}`, expectedStatus: http.StatusOK, expectedResult: false},
		{name: "missing word", body: `{"answer":"бегать"}`, expectedStatus: http.StatusBadRequest},
		{name: "bad json", body: `{`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t)

			resp, err := http.Post(srv.URL+"/api/check", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var result CheckResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
			assert.Equal(t, tt.expectedResult, result.Correct)
			assert.Equal(t, "бегать", result.Translation)
		})
	}
}

func TestGetFacts(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCount  int
	}{
		{name: "default count", query: "", expectedStatus: http.StatusOK, expectedCount: 4},
		{name: "explicit count", query: "?count=2", expectedStatus: http.StatusOK, expectedCount: 2},
		{name: "too many", query: "?count=11", expectedStatus: http.StatusBadRequest},
		{name: "zero", query: "?count=0", expectedStatus: http.StatusBadRequest},
		{name: "not a number", query: "?count=lots", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, facts := newTestServer(t)

			resp, err := http.Get(srv.URL + "/api/facts" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var result []domain.Fact
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
			assert.Len(t, result, tt.expectedCount)
			assert.Equal(t, tt.expectedCount, facts.lastCount)
		})
	}
}
