package manufacturer

import (
	"context"

	"github.com/achuth-0908/scgateway/internal/database"
)

// Service exposes the manufacturer operations. Rows are never updated or
// deleted through it.
type Service struct {
	repo Repository
}

func NewService(g *database.Gateway) *Service {
	return &Service{repo: New(g)}
}

func (s *Service) InsertManufacturer(ctx context.Context, m *Manufacturer) error {
	return s.repo.Create(ctx, m)
}

func (s *Service) GetManufacturers(ctx context.Context) ([]Manufacturer, error) {
	return s.repo.GetAll(ctx)
}
