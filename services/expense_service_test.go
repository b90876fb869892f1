package services

import (
	"testing"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeSpendingEmpty(t *testing.T) {
	breakdown := SummarizeSpending(nil)
	assert.Equal(t, 0.0, breakdown.Total)
	assert.Equal(t, 0, breakdown.Count)
	assert.Equal(t, 0.0, breakdown.AveragePerTransaction)
	assert.Empty(t, breakdown.ByCategory)
}

func TestSummarizeSpending(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 42.50, Category: "groceries"},
		{Amount: 17.25, Category: "groceries"},
		{Amount: 30.00, Category: "household"},
	}

	breakdown := SummarizeSpending(expenses)
	assert.Equal(t, 89.75, breakdown.Total)
	assert.Equal(t, 3, breakdown.Count)
	assert.InDelta(t, 29.92, breakdown.AveragePerTransaction, 0.001)
	assert.Equal(t, 59.75, breakdown.ByCategory["groceries"])
	assert.Equal(t, 30.00, breakdown.ByCategory["household"])
}

func TestSummarizeSpendingRounds(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 10.004, Category: "misc"},
		{Amount: 10.004, Category: "misc"},
	}

	breakdown := SummarizeSpending(expenses)
	assert.Equal(t, 20.01, breakdown.Total)
	assert.Equal(t, 20.01, breakdown.ByCategory["misc"])
}
