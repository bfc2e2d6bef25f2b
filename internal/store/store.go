// Package store exposes document-style collections on top of GORM.
//
// Each Collection maps one resource table. Every mutation issues a single
// SQL statement so a dropped request never leaves a partial write behind.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

// Filter is a WHERE condition. Build them with Eq and After.
type Filter = clause.Expression

func Eq(column string, value any) Filter {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}

// After matches rows whose column is strictly later than t.
func After(column string, t time.Time) Filter {
	return clause.Gt{Column: clause.Column{Name: column}, Value: t}
}

// NotAfter matches rows whose column is at or before t.
func NotAfter(column string, t time.Time) Filter {
	return clause.Lte{Column: clause.Column{Name: column}, Value: t}
}

// IsUniqueViolation reports whether err came from a unique constraint on
// PostgreSQL (SQLSTATE 23505) or SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type Collection[T any] struct {
	db *gorm.DB
}

func NewCollection[T any](db *gorm.DB) *Collection[T] {
	return &Collection[T]{db: db}
}

func (c *Collection[T]) where(ctx context.Context, filters []Filter) *gorm.DB {
	tx := c.db.WithContext(ctx).Model(new(T))
	if len(filters) > 0 {
		tx = tx.Clauses(clause.Where{Exprs: filters})
	}
	return tx
}

func (c *Collection[T]) FindOne(ctx context.Context, filters ...Filter) (*T, error) {
	var out T
	err := c.where(ctx, filters).Take(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find one: %w", err)
	}
	return &out, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return c.FindOne(ctx, Eq("id", id))
}

// FindAllDesc returns up to limit rows ordered by column descending. limit <= 0 means no cap.
func (c *Collection[T]) FindAllDesc(ctx context.Context, column string, limit int) ([]T, error) {
	out := make([]T, 0)
	tx := c.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true})
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return out, nil
}

func (c *Collection[T]) InsertOne(ctx context.Context, doc *T) error {
	if err := c.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (c *Collection[T]) InsertMany(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	if err := c.db.WithContext(ctx).Create(&docs).Error; err != nil {
		return fmt.Errorf("insert many: %w", err)
	}
	return nil
}

// UpdateOne applies set (column -> value) to rows matching filters and
// reports how many rows changed. An empty set is a no-op.
func (c *Collection[T]) UpdateOne(ctx context.Context, set map[string]any, filters ...Filter) (int64, error) {
	if len(filters) == 0 {
		return 0, errors.New("update without filter")
	}
	if len(set) == 0 {
		return 0, nil
	}
	res := c.where(ctx, filters).Updates(set)
	if res.Error != nil {
		return 0, fmt.Errorf("update: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (c *Collection[T]) DeleteOne(ctx context.Context, filters ...Filter) (int64, error) {
	if len(filters) == 0 {
		return 0, errors.New("delete without filter")
	}
	res := c.db.WithContext(ctx).Clauses(clause.Where{Exprs: filters}).Delete(new(T))
	if res.Error != nil {
		return 0, fmt.Errorf("delete: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (c *Collection[T]) Count(ctx context.Context, filters ...Filter) (int64, error) {
	var n int64
	if err := c.where(ctx, filters).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
