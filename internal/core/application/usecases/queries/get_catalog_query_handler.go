package queries

import (
	"context"

	"galapagos/internal/core/domain/model/client"
	"galapagos/internal/core/domain/model/product"
	"galapagos/internal/core/ports"
)

type GetClientsQueryHandler struct {
	clients ports.ClientRepository
}

func NewGetClientsQueryHandler(clients ports.ClientRepository) GetClientsQueryHandler {
	return GetClientsQueryHandler{clients: clients}
}

func (h GetClientsQueryHandler) Handle(ctx context.Context, query GetClientsQuery) ([]*client.Client, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.clients.Find(ctx, ports.ClientFilter{ID: query.ID(), Name: query.Name()})
}

type GetProductsQueryHandler struct {
	products ports.ProductRepository
}

func NewGetProductsQueryHandler(products ports.ProductRepository) GetProductsQueryHandler {
	return GetProductsQueryHandler{products: products}
}

func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.products.Find(ctx, ports.ProductFilter{ID: query.ID(), Name: query.Name()})
}
