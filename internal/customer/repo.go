package customer

import (
	"context"

	"github.com/achuth-0908/scgateway/internal/database"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Customer, error)
	Create(ctx context.Context, c *Customer) error
}

type repo struct {
	g *database.Gateway
}

func New(g *database.Gateway) Repository {
	return &repo{g: g}
}

func (r *repo) GetAll(ctx context.Context) ([]Customer, error) {
	return database.Query[Customer](ctx, r.g, "get customers", getAllCustomersSQL)
}

func (r *repo) Create(ctx context.Context, c *Customer) error {
	return database.Exec(ctx, r.g, "insert customer", createCustomerSQL,
		c.CustomerID,
		c.Name,
		c.Address,
		c.PhoneNo,
		c.Email,
	)
}
