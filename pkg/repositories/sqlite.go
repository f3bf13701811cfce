package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cbodonnell/spinwheel/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	dir, err := os.ReadDir(migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	for _, entry := range dir {
		if entry.IsDir() {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			return nil, fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveSpin(ctx context.Context, spin *models.Spin) error {
	labels, err := json.Marshal(spin.Labels)
	if err != nil {
		return fmt.Errorf("failed to marshal labels: %v", err)
	}

	q := `
	INSERT INTO spins (id, labels, winner, winner_index, rotation, timestamp)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	if _, err := r.db.ExecContext(ctx, q, spin.ID, string(labels), spin.Winner, spin.WinnerIndex, spin.Rotation, spin.Timestamp); err != nil {
		return fmt.Errorf("failed to insert spin: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) GetSpin(ctx context.Context, id string) (*models.Spin, error) {
	q := `
	SELECT id, labels, winner, winner_index, rotation, timestamp
	FROM spins WHERE id = ?;
	`
	spin := &models.Spin{}
	var labels string
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&spin.ID, &labels, &spin.Winner, &spin.WinnerIndex, &spin.Rotation, &spin.Timestamp); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan spin: %v", err)
	}

	if err := json.Unmarshal([]byte(labels), &spin.Labels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal labels: %v", err)
	}

	return spin, nil
}

func (r *SQLiteRepository) ListSpins(ctx context.Context, limit int) ([]*models.Spin, error) {
	q := `
	SELECT id, labels, winner, winner_index, rotation, timestamp
	FROM spins ORDER BY timestamp DESC LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query spins: %v", err)
	}
	defer rows.Close()

	spins := []*models.Spin{}
	for rows.Next() {
		spin := &models.Spin{}
		var labels string
		if err := rows.Scan(&spin.ID, &labels, &spin.Winner, &spin.WinnerIndex, &spin.Rotation, &spin.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan spin: %v", err)
		}
		if err := json.Unmarshal([]byte(labels), &spin.Labels); err != nil {
			return nil, fmt.Errorf("failed to unmarshal labels: %v", err)
		}
		spins = append(spins, spin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spins: %v", err)
	}

	return spins, nil
}
