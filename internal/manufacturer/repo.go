package manufacturer

import (
	"context"

	"github.com/achuth-0908/scgateway/internal/database"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Manufacturer, error)
	Create(ctx context.Context, m *Manufacturer) error
}

type repo struct {
	g *database.Gateway
}

func New(g *database.Gateway) Repository {
	return &repo{g: g}
}

func (r *repo) GetAll(ctx context.Context) ([]Manufacturer, error) {
	return database.Query[Manufacturer](ctx, r.g, "get manufacturers", getAllManufacturersSQL)
}

func (r *repo) Create(ctx context.Context, m *Manufacturer) error {
	return database.Exec(ctx, r.g, "insert manufacturer", createManufacturerSQL,
		m.ManufacturerID,
		m.Name,
		m.Address,
		m.PhoneNo,
		m.Email,
	)
}
