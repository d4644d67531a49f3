package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/entity/expense"
)

var turnTime = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func sampleTurn(id string, created time.Time) expense.Turn {
	return expense.Turn{
		ID:       id,
		Message:  "took flight for 5000 rs and ate at airport for 300 rs",
		Currency: "INR",
		Records: []expense.Record{
			{Date: "2024-03-15", Category: "Transportation", Amount: 5000, Description: "Flight Ticket"},
			{Date: "2024-03-15", Category: "Food & Dining", Amount: 300, Description: "Airport Food"},
		},
		CreatedAt: created,
	}
}

func Test_OnInMemSaveTurn_ShouldKeepRecordOrderAndIgnoreReplays(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()

	require.NoError(t, s.SaveTurn(ctx, sampleTurn("a", turnTime)))
	require.NoError(t, s.SaveTurn(ctx, sampleTurn("a", turnTime)))

	entries, err := s.GetExpenses(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Flight Ticket", entries[0].Description)
	assert.Equal(t, "Airport Food", entries[1].Description)
	assert.Equal(t, "a", entries[1].TurnID)
	assert.Equal(t, "INR", entries[1].Currency)
}

func Test_OnInMemGetExpenses_ShouldFilterBySince(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()

	require.NoError(t, s.SaveTurn(ctx, sampleTurn("old", turnTime.AddDate(0, -2, 0))))
	require.NoError(t, s.SaveTurn(ctx, sampleTurn("new", turnTime)))

	entries, err := s.GetExpenses(ctx, turnTime.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].TurnID)
}

func Test_OnInsertExpensesQuery_ShouldWriteOneRowPerRecord(t *testing.T) {
	sql, args, err := insertExpensesQuery(sampleTurn("a", turnTime)).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO expenses (turn_id,position,date,category,amount,description) "+
			"VALUES ($1,$2,$3,$4,$5,$6),($7,$8,$9,$10,$11,$12) "+
			"ON CONFLICT (turn_id, position) DO NOTHING",
		sql)
	assert.Equal(t, []interface{}{
		"a", 0, "2024-03-15", "Transportation", "5000", "Flight Ticket",
		"a", 1, "2024-03-15", "Food & Dining", "300", "Airport Food",
	}, args)
}

func Test_OnSelectExpensesQuery_ShouldFilterOnlyWhenSinceSet(t *testing.T) {
	all, args, err := selectExpensesQuery(time.Time{}).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, all, "WHERE")
	assert.Empty(t, args)

	since, args, err := selectExpensesQuery(turnTime).ToSql()
	require.NoError(t, err)
	assert.Contains(t, since, "WHERE t.created_at >= $1")
	assert.Equal(t, []interface{}{turnTime}, args)
}
