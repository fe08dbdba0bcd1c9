package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// --- ORDERS ---

type Order struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Qty   float64            `bson:"qty" json:"qty"`
	Price float64            `bson:"price" json:"price"`
	Mode  string             `bson:"mode" json:"mode"`
}

type OrderRequest struct {
	Name  string  `json:"name" binding:"required"`
	Qty   float64 `json:"qty"`
	Price float64 `json:"price"`
	Mode  string  `json:"mode"`
}

func (r *OrderRequest) ToEntity() Order {
	return Order{
		Name:  r.Name,
		Qty:   r.Qty,
		Price: r.Price,
		Mode:  r.Mode,
	}
}

// --- HOLDINGS ---

type Holding struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Qty   float64            `bson:"qty" json:"qty"`
	Avg   float64            `bson:"avg" json:"avg"`
	Price float64            `bson:"price" json:"price"`
	Net   string             `bson:"net" json:"net"`
	Day   string             `bson:"day" json:"day"`
}

// --- POSITIONS ---

type Position struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Product string             `bson:"product" json:"product"`
	Name    string             `bson:"name" json:"name"`
	Qty     float64            `bson:"qty" json:"qty"`
	Avg     float64            `bson:"avg" json:"avg"`
	Price   float64            `bson:"price" json:"price"`
	Net     string             `bson:"net" json:"net"`
	Day     string             `bson:"day" json:"day"`
	IsLoss  bool               `bson:"isLoss" json:"isLoss"`
}
