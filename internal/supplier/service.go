package supplier

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

// InsertSupplier stores s exactly as given; the store enforces uniqueness.
func (s *Service) InsertSupplier(ctx context.Context, sup *Supplier) error {
	return s.repo.Create(ctx, sup)
}

func (s *Service) GetSuppliers(ctx context.Context) ([]Supplier, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) InsertSupplierProduct(ctx context.Context, p *Product) error {
	return s.repo.CreateProduct(ctx, p)
}

func (s *Service) GetSupplierProducts(ctx context.Context) ([]Product, error) {
	return s.repo.GetProducts(ctx)
}
