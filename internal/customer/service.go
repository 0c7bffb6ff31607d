package customer

import (
	"context"

	"github.com/achuth-0908/scgateway/internal/database"
)

type Service struct {
	repo Repository
}

func NewService(g *database.Gateway) *Service {
	return &Service{repo: New(g)}
}

func (s *Service) InsertCustomer(ctx context.Context, c *Customer) error {
	return s.repo.Create(ctx, c)
}

func (s *Service) GetCustomers(ctx context.Context) ([]Customer, error) {
	return s.repo.GetAll(ctx)
}
