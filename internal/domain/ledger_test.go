package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudiedLedger_FilterPool(t *testing.T) {
	tests := []struct {
		name     string
		pool     []string
		studied  []string
		expected []string
	}{
		{
			name:     "drops studied word",
			pool:     []string{"run", "go"},
			studied:  []string{"run"},
			expected: []string{"go"},
		},
		{
			name:     "empty ledger keeps order",
			pool:     []string{"see", "look", "make"},
			studied:  nil,
			expected: []string{"see", "look", "make"},
		},
		{
			name:     "everything studied",
			pool:     []string{"run", "go"},
			studied:  []string{"go", "run", "come"},
			expected: []string{},
		},
		{
			name:     "empty pool",
			pool:     nil,
			studied:  []string{"run"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewStudiedLedger(tt.studied)
			assert.Equal(t, tt.expected, ledger.FilterPool(tt.pool))
		})
	}
}

func TestStudiedLedger_Append(t *testing.T) {
	ledger := NewStudiedLedger([]string{"run"})
	assert.Equal(t, 1, ledger.Version)

	next := ledger.Append("go")

	assert.Equal(t, 2, next.Version)
	assert.True(t, next.Contains("go"))
	assert.True(t, next.Contains("run"))
	// original value is untouched
	assert.False(t, ledger.Contains("go"))
	assert.Equal(t, []string{"run"}, ledger.Words)
}

func TestStudiedLedger_AppendExisting(t *testing.T) {
	ledger := NewStudiedLedger([]string{"run"})

	next := ledger.Append("run")

	assert.Equal(t, ledger.Version, next.Version)
	assert.Equal(t, []string{"run"}, next.Words)
}

func TestNewStudiedLedger_Copies(t *testing.T) {
	words := []string{"run"}
	ledger := NewStudiedLedger(words)
	words[0] = "go"

	assert.True(t, ledger.Contains("run"))
}
