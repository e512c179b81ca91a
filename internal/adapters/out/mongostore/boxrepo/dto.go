package boxrepo

import (
	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/box"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoxDTO is a document of the boxes collection.
type BoxDTO struct {
	ID       primitive.ObjectID `bson:"_id"`
	OrderID  primitive.ObjectID `bson:"order_id"`
	ClientID primitive.ObjectID `bson:"client_id"`
	Number   int                `bson:"number"`
	Status   string             `bson:"status"`
	Content  string             `bson:"content"`
}

func fromDomain(b *box.Box) BoxDTO {
	return BoxDTO{
		ID:       b.ID().ObjectID(),
		OrderID:  b.OrderID().ObjectID(),
		ClientID: b.ClientID().ObjectID(),
		Number:   b.Number(),
		Status:   mongostore.StatusValue(b.Status()),
		Content:  b.Content(),
	}
}

func toDomain(dto BoxDTO) (*box.Box, error) {
	ids, err := mongostore.IDs([]primitive.ObjectID{dto.ID, dto.OrderID, dto.ClientID})
	if err != nil {
		return nil, err
	}
	status, err := box.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return box.RestoreBox(ids[0], ids[1], ids[2], dto.Number, status, dto.Content)
}
