package supplier

import (
	"context"

	"github.com/achuth-0908/scgateway/internal/database"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Supplier, error)
	Create(ctx context.Context, s *Supplier) error
	GetProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, p *Product) error
}

type repo struct {
	g *database.Gateway
}

func New(g *database.Gateway) Repository {
	return &repo{g: g}
}

func (r *repo) GetAll(ctx context.Context) ([]Supplier, error) {
	return database.Query[Supplier](ctx, r.g, "get suppliers", getAllSuppliersSQL)
}

func (r *repo) Create(ctx context.Context, s *Supplier) error {
	return database.Exec(ctx, r.g, "insert supplier", createSupplierSQL,
		s.SupplierID,
		s.Name,
		s.Address,
		s.PhoneNo,
		s.Email,
	)
}

func (r *repo) GetProducts(ctx context.Context) ([]Product, error) {
	return database.Query[Product](ctx, r.g, "get supplier products", getAllSupplierProductsSQL)
}

func (r *repo) CreateProduct(ctx context.Context, p *Product) error {
	return database.Exec(ctx, r.g, "insert supplier product", createSupplierProductSQL,
		p.SupplierID,
		p.ProductsSupplied,
	)
}
