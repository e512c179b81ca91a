package productrepo

import (
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/product"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductDTO is a document of the products collection.
type ProductDTO struct {
	ID             primitive.ObjectID `bson:"_id"`
	Name           string             `bson:"name"`
	Description    string             `bson:"description,omitempty"`
	StockAvailable int                `bson:"stock_available"`
	WeightKg       float64            `bson:"weight_kg"`
	UnitPrice      float64            `bson:"unit_price"`
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID().ObjectID(),
		Name:           p.Name(),
		Description:    p.Description(),
		StockAvailable: p.StockAvailable(),
		WeightKg:       p.WeightKg(),
		UnitPrice:      p.UnitPrice(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.IDFromObjectID(dto.ID)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, dto.Name, dto.Description, dto.StockAvailable, dto.WeightKg, dto.UnitPrice)
}
