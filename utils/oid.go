package utils

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
)

// Oid parses a hex ObjectID taken from a path, query or payload. Anything
// malformed, including the all-zero id, is a validation error on field.
func Oid(field, hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(strings.TrimSpace(hex))
	if err != nil || id.IsZero() {
		return bson.NilObjectID, models.Invalid(field, "is not a valid id")
	}
	return id, nil
}
