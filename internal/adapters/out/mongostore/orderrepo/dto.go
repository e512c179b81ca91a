package orderrepo

import (
	"time"

	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderDTO is a document of the orders collection.
type OrderDTO struct {
	ID             primitive.ObjectID `bson:"_id"`
	ClientID       primitive.ObjectID `bson:"client_id"`
	OrderDate      time.Time          `bson:"order_date"`
	Status         string             `bson:"status"`
	Priority       string             `bson:"priority"`
	DeliveryPort   string             `bson:"delivery_port"`
	Products       []LineDTO          `bson:"products"`
	BoxCount       int                `bson:"box_count"`
	BoxesDelivered int                `bson:"boxes_delivered"`
	TotalWeightKg  float64            `bson:"total_weight_kg"`
}

// LineDTO is one entry of an order's products array.
type LineDTO struct {
	ProductID primitive.ObjectID `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
}

func fromDomain(o *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, LineDTO{ProductID: line.ProductID().ObjectID(), Quantity: line.Quantity()})
	}

	return OrderDTO{
		ID:             o.ID().ObjectID(),
		ClientID:       o.ClientID().ObjectID(),
		OrderDate:      o.OrderDate(),
		Status:         mongostore.StatusValue(o.Status()),
		Priority:       o.Priority(),
		DeliveryPort:   o.DeliveryPort(),
		Products:       lines,
		BoxCount:       o.BoxCount(),
		BoxesDelivered: o.BoxesDelivered(),
		TotalWeightKg:  o.TotalWeightKg(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromObjectID(dto.ID)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.IDFromObjectID(dto.ClientID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Products))
	for _, l := range dto.Products {
		productID, err := kernel.IDFromObjectID(l.ProductID)
		if err != nil {
			return nil, err
		}
		line, err := order.NewLine(productID, l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, clientID, dto.OrderDate.UTC(), status, dto.Priority, dto.DeliveryPort,
		lines, dto.BoxCount, dto.BoxesDelivered, dto.TotalWeightKg,
	)
}
