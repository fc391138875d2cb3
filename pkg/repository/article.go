package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/headlines/pkg/domain"
)

// ArticleRepository handles article storage, link is the identity of an article
type ArticleRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64          `db:"id"`
	Source      string         `db:"source"`
	Category    string         `db:"category"`
	Title       string         `db:"title"`
	Link        string         `db:"link"`
	PublishedAt time.Time      `db:"published_at"`
	ImageURL    sql.NullString `db:"image_url"`
	FetchedAt   time.Time      `db:"fetched_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db, now: time.Now}
}

// BulkUpsertByLink writes the whole batch in one transaction. An article with a known link
// overwrites the stored one and counts as modified, a new link is inserted.
// Every written row gets the same fresh fetched_at, the caller's FetchedAt is ignored.
func (r *ArticleRepository) BulkUpsertByLink(ctx context.Context, articles []domain.Article) (domain.UpsertResult, error) {
	if len(articles) == 0 {
		return domain.UpsertResult{}, nil
	}

	updateQuery := r.db.Rebind(`
		UPDATE articles
		SET source = ?, category = ?, title = ?, published_at = ?, image_url = ?, fetched_at = ?
		WHERE link = ?`)
	insertQuery := r.db.Rebind(`
		INSERT INTO articles (source, category, title, link, published_at, image_url, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (link) DO UPDATE SET
			source = excluded.source,
			category = excluded.category,
			title = excluded.title,
			published_at = excluded.published_at,
			image_url = excluded.image_url,
			fetched_at = excluded.fetched_at`)

	now := r.now()
	var res domain.UpsertResult
	err := newRetrier().Do(ctx, func() error {
		res = domain.UpsertResult{}
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
		}
		defer func() { _ = tx.Rollback() }()

		for _, a := range articles {
			rec := r.toSQL(a, now)
			upd, err := tx.ExecContext(ctx, updateQuery, rec.Source, rec.Category, rec.Title, rec.PublishedAt,
				rec.ImageURL, rec.FetchedAt, rec.Link)
			if err != nil {
				return r.writeError(fmt.Errorf("update article %s: %w", a.Link, err))
			}
			if n, err := upd.RowsAffected(); err == nil && n > 0 {
				res.Modified++
				continue
			}
			if _, err := tx.ExecContext(ctx, insertQuery, rec.Source, rec.Category, rec.Title, rec.Link,
				rec.PublishedAt, rec.ImageURL, rec.FetchedAt); err != nil {
				return r.writeError(fmt.Errorf("insert article %s: %w", a.Link, err))
			}
			res.Inserted++
		}

		if err := tx.Commit(); err != nil {
			return r.writeError(fmt.Errorf("commit: %w", err))
		}
		return nil
	}, errCritical)
	if err != nil {
		return domain.UpsertResult{}, fmt.Errorf("bulk upsert %d articles: %w", len(articles), err)
	}
	return res, nil
}

// GetArticles returns stored articles, most recently published first. Zero limit means all.
func (r *ArticleRepository) GetArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	res, err := r.selectArticles(ctx, "", nil, limit)
	if err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}
	return res, nil
}

// GetCategoryArticles returns stored articles of a single category, most recently published first
func (r *ArticleRepository) GetCategoryArticles(ctx context.Context, category string, limit int) ([]domain.Article, error) {
	res, err := r.selectArticles(ctx, "WHERE category = ?", []any{category}, limit)
	if err != nil {
		return nil, fmt.Errorf("get articles of %s: %w", category, err)
	}
	return res, nil
}

func (r *ArticleRepository) selectArticles(ctx context.Context, where string, args []any, limit int) ([]domain.Article, error) {
	query := `SELECT id, source, category, title, link, published_at, image_url, fetched_at
		FROM articles ` + where + ` ORDER BY published_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	res := make([]domain.Article, len(recs))
	for i := range recs {
		res[i] = r.toDomain(&recs[i])
	}
	return res, nil
}

// GetArticle returns a stored article by its link
func (r *ArticleRepository) GetArticle(ctx context.Context, link string) (*domain.Article, error) {
	var rec articleSQL
	query := r.db.Rebind(`SELECT id, source, category, title, link, published_at, image_url, fetched_at
		FROM articles WHERE link = ?`)
	if err := r.db.GetContext(ctx, &rec, query, link); err != nil {
		return nil, fmt.Errorf("get article %s: %w", link, err)
	}
	art := r.toDomain(&rec)
	return &art, nil
}

// Ping verifies the store is reachable
func (r *ArticleRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}

// Count returns the number of stored articles
func (r *ArticleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles"); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// writeError marks everything except lock contention as not retryable
func (r *ArticleRepository) writeError(err error) error {
	if isLockError(err) {
		return err // repeater will retry this
	}
	return &criticalError{err: err}
}

// toSQL converts domain.Article to articleSQL stamped with fetchedAt.
// Times are stored in UTC to keep them sortable.
func (r *ArticleRepository) toSQL(a domain.Article, fetchedAt time.Time) articleSQL {
	publishedAt := a.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = fetchedAt
	}
	return articleSQL{
		Source:      a.Source,
		Category:    a.Category,
		Title:       a.Title,
		Link:        a.Link,
		PublishedAt: publishedAt.UTC(),
		ImageURL:    sql.NullString{String: a.ImageURL, Valid: a.ImageURL != ""},
		FetchedAt:   fetchedAt.UTC(),
	}
}

// toDomain converts articleSQL to domain.Article
func (r *ArticleRepository) toDomain(rec *articleSQL) domain.Article {
	return domain.Article{
		Source:      rec.Source,
		Category:    rec.Category,
		Title:       rec.Title,
		Link:        rec.Link,
		PublishedAt: rec.PublishedAt.UTC(),
		ImageURL:    rec.ImageURL.String,
		FetchedAt:   rec.FetchedAt.UTC(),
	}
}
