// Package history stores generated suggestions in Postgres.
package history

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/giftideas/internal/database"
	"github.com/mtlprog/giftideas/internal/model"
)

const table = "suggestions"

// Repository handles suggestion history data access.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new history repository.
// Returns error if pool is nil.
func NewRepository(pool *pgxpool.Pool) (*Repository, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &Repository{pool: pool}, nil
}

func saveQuery(in model.FormInput, result string) sq.InsertBuilder {
	return database.QB.
		Insert(table).
		Columns("gender", "age", "price_min", "price_max", "hobbies", "result").
		Values(string(in.Gender), in.Age, in.PriceMin, in.PriceMax, in.Hobbies, result).
		Suffix("RETURNING id")
}

func recentQuery(limit int) sq.SelectBuilder {
	return database.QB.
		Select("id", "gender", "age", "price_min", "price_max", "hobbies", "result", "created_at").
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(max(limit, 1)))
}

// Save stores one suggestion and returns its id.
func (r *Repository) Save(ctx context.Context, in model.FormInput, result string) (int64, error) {
	query, args, err := saveQuery(in, result).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build save query: %w", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert suggestion: %w", err)
	}
	return id, nil
}

// Recent returns the newest suggestions, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	query, args, err := recentQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query suggestions: %w", err)
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var (
			e      model.HistoryEntry
			gender string
		)
		if err := rows.Scan(&e.ID, &gender, &e.Form.Age, &e.Form.PriceMin, &e.Form.PriceMax, &e.Form.Hobbies, &e.Result, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		e.Form.Gender = model.Gender(gender)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suggestion rows: %w", err)
	}

	return entries, nil
}
