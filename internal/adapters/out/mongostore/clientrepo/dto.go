package clientrepo

import (
	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/client"
	"galapagos/internal/core/domain/model/kernel"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientDTO is a document of the clients collection.
type ClientDTO struct {
	ID           primitive.ObjectID   `bson:"_id"`
	Name         string               `bson:"name"`
	Type         string               `bson:"type,omitempty"`
	Specialty    string               `bson:"specialty,omitempty"`
	Study        string               `bson:"study,omitempty"`
	Email        string               `bson:"email,omitempty"`
	OrderHistory []primitive.ObjectID `bson:"order_history"`
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:           c.ID().ObjectID(),
		Name:         c.Name(),
		Type:         c.Type(),
		Specialty:    c.Specialty(),
		Study:        c.Study(),
		Email:        c.Email(),
		OrderHistory: mongostore.ObjectIDs(c.OrderHistory()),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.IDFromObjectID(dto.ID)
	if err != nil {
		return nil, err
	}
	history, err := mongostore.IDs(dto.OrderHistory)
	if err != nil {
		return nil, err
	}
	return client.RestoreClient(id, dto.Name, dto.Type, dto.Specialty, dto.Study, dto.Email, history)
}
