package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"listingWatcherBot/internal/domain/entity"

	_ "modernc.org/sqlite"
)

const defaultSQLitePath = "seen_ids.db"

type SQLiteSeenRepository struct {
	db *sql.DB
}

func NewSQLiteSeenRepository(dbPath string) (*SQLiteSeenRepository, error) {
	if dbPath == "" {
		dbPath = defaultSQLitePath
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	repo := &SQLiteSeenRepository{db: db}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return repo, nil
}

func (r *SQLiteSeenRepository) initSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS seen_ids (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to execute schema query: %w", err)
	}
	return nil
}

func (r *SQLiteSeenRepository) Load(ctx context.Context) (*entity.SeenSet, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM seen_ids ORDER BY seq")
	if err != nil {
		return entity.NewSeenSet(), fmt.Errorf("%w: failed to query seen ids: %w", entity.ErrStore, err)
	}
	defer rows.Close()

	seen := entity.NewSeenSet()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return entity.NewSeenSet(), fmt.Errorf("%w: failed to scan seen id: %w", entity.ErrStore, err)
		}
		seen.Add(id)
	}
	if err := rows.Err(); err != nil {
		return entity.NewSeenSet(), fmt.Errorf("%w: failed to read seen ids: %w", entity.ErrStore, err)
	}

	return seen, nil
}

// Save rewrites the table in one transaction so evicted IDs disappear too.
func (r *SQLiteSeenRepository) Save(ctx context.Context, seen *entity.SeenSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", entity.ErrStore, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM seen_ids"); err != nil {
		return fmt.Errorf("%w: failed to clear seen ids: %w", entity.ErrStore, err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO seen_ids (id, seq) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("%w: failed to prepare insert: %w", entity.ErrStore, err)
	}
	defer stmt.Close()

	for i, id := range seen.IDs() {
		if _, err := stmt.ExecContext(ctx, id, i); err != nil {
			return fmt.Errorf("%w: failed to insert seen id: %w", entity.ErrStore, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit seen ids: %w", entity.ErrStore, err)
	}

	return nil
}

func (r *SQLiteSeenRepository) Close() error {
	return r.db.Close()
}
