package model

import (
	"fmt"
	"time"

	sharederrors "emile-auto/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car is a vehicle listing. The schema is deliberately permissive: beyond
// the few declared fields, clients may attach arbitrary descriptive
// attributes (mileage, fuel, photos, ...) which are stored flat in the
// document via the inline map.
type Car struct {
	ID         primitive.ObjectID     `json:"_id,omitempty" bson:"_id,omitempty"`
	Make       string                 `json:"make" bson:"make"`
	Model      string                 `json:"model,omitempty" bson:"model,omitempty"`
	Price      float64                `json:"price" bson:"price"`
	Views      int64                  `json:"views" bson:"views"`
	CreatedAt  time.Time              `json:"createdAt" bson:"created_at"`
	Attributes map[string]interface{} `json:"attributes,omitempty" bson:",inline"`
}

// reservedAttributes are document fields owned by the declared schema.
// Inline attributes must not shadow them, or a replace could clobber the
// views counter or the creation timestamp through the open map.
var reservedAttributes = map[string]struct{}{
	"_id":        {},
	"make":       {},
	"model":      {},
	"price":      {},
	"views":      {},
	"created_at": {},
	"createdAt":  {},
}

// Validate enforces the gateway-side schema: required make, non-negative
// price, no attribute shadowing a declared field. The returned message is
// surfaced to the client verbatim.
func (c *Car) Validate() error {
	if c.Make == "" {
		return sharederrors.NewValidationError("make is required")
	}
	if c.Price < 0 {
		return sharederrors.NewValidationError("price must not be negative")
	}
	for key := range c.Attributes {
		if _, reserved := reservedAttributes[key]; reserved {
			return sharederrors.NewValidationError(fmt.Sprintf("attribute %q conflicts with a built-in field", key))
		}
	}
	return nil
}
