package repositories

import (
	"context"

	"github.com/cbodonnell/spinwheel/pkg/repositories/models"
)

type Repository interface {
	Close(ctx context.Context) error
	SaveSpin(ctx context.Context, spin *models.Spin) error
	GetSpin(ctx context.Context, id string) (*models.Spin, error)
	ListSpins(ctx context.Context, limit int) ([]*models.Spin, error)
}
