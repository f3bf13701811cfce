package repositories

import (
	"context"
	"fmt"

	"github.com/cbodonnell/spinwheel/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the given database. The caller is
// responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveSpin(ctx context.Context, spin *models.Spin) error {
	q := `
	INSERT INTO spins (id, labels, winner, winner_index, rotation, timestamp)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := r.conn.Exec(ctx, q, spin.ID, spin.Labels, spin.Winner, spin.WinnerIndex, spin.Rotation, spin.Timestamp); err != nil {
		return fmt.Errorf("failed to insert spin: %v", err)
	}

	return nil
}

func (r *PostgresRepository) GetSpin(ctx context.Context, id string) (*models.Spin, error) {
	q := `
	SELECT id, labels, winner, winner_index, rotation, timestamp
	FROM spins WHERE id = $1;
	`
	spin := &models.Spin{}
	if err := r.conn.QueryRow(ctx, q, id).Scan(&spin.ID, &spin.Labels, &spin.Winner, &spin.WinnerIndex, &spin.Rotation, &spin.Timestamp); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan spin: %v", err)
	}

	return spin, nil
}

func (r *PostgresRepository) ListSpins(ctx context.Context, limit int) ([]*models.Spin, error) {
	q := `
	SELECT id, labels, winner, winner_index, rotation, timestamp
	FROM spins ORDER BY timestamp DESC LIMIT $1;
	`
	rows, err := r.conn.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query spins: %v", err)
	}
	defer rows.Close()

	spins := []*models.Spin{}
	for rows.Next() {
		spin := &models.Spin{}
		if err := rows.Scan(&spin.ID, &spin.Labels, &spin.Winner, &spin.WinnerIndex, &spin.Rotation, &spin.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan spin: %v", err)
		}
		spins = append(spins, spin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spins: %v", err)
	}

	return spins, nil
}
