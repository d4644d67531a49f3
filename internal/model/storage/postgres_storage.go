package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	DSN() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = RunMigrations(db); err != nil {
		return nil, errors.Wrap(err, "migrate journal")
	}
	return &PostgresStorage{db}, nil
}

// SaveTurn writes the turn and its records in one transaction.
func (s *PostgresStorage) SaveTurn(ctx context.Context, turn expense.Turn) error {
	if len(turn.Records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "save turn")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	_, err = insertTurnQuery(turn).RunWith(tx).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "save turn")
	}
	_, err = insertExpensesQuery(turn).RunWith(tx).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "save turn expenses")
	}
	return errors.Wrap(tx.Commit(), "save turn")
}

func insertTurnQuery(turn expense.Turn) sq.InsertBuilder {
	return psql.Insert("turns").
		Columns("id", "message", "currency", "created_at").
		Values(turn.ID, turn.Message, turn.Currency, turn.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING")
}

func insertExpensesQuery(turn expense.Turn) sq.InsertBuilder {
	query := psql.Insert("expenses").
		Columns("turn_id", "position", "date", "category", "amount", "description")
	for i, rec := range turn.Records {
		query = query.Values(turn.ID, i, rec.Date, rec.Category, rec.AmountLiteral(), rec.Description)
	}
	return query.Suffix("ON CONFLICT (turn_id, position) DO NOTHING")
}

func selectExpensesQuery(since time.Time) sq.SelectBuilder {
	query := psql.Select("e.turn_id", "e.date", "e.category", "e.amount", "e.description", "t.currency", "t.created_at").
		From("expenses e").
		Join("turns t ON t.id = e.turn_id").
		OrderBy("t.created_at", "e.position")
	if !since.IsZero() {
		query = query.Where(sq.GtOrEq{"t.created_at": since})
	}
	return query
}

// GetExpenses returns the records of every turn created at or after since.
// A zero since returns the whole journal.
func (s *PostgresStorage) GetExpenses(ctx context.Context, since time.Time) ([]expense.Entry, error) {
	rows, err := selectExpensesQuery(since).RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	entries := make([]expense.Entry, 0)
	for rows.Next() {
		var e expense.Entry
		err = rows.Scan(&e.TurnID, &e.Date, &e.Category, &e.Amount, &e.Description, &e.Currency, &e.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get expenses")
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	return entries, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
