package utils

import (
	"errors"
	"testing"

	"eventhub-backend/internal/models"
)

func TestOid(t *testing.T) {
	id, err := Oid("event_id", " 665f1f77bcf86cd799439011 ")
	if err != nil || id.Hex() != "665f1f77bcf86cd799439011" {
		t.Fatalf("Oid = %v, %v", id, err)
	}

	for _, bad := range []string{"", "nope", "000000000000000000000000", "665f1f77bcf86cd79943901"} {
		_, err := Oid("event_id", bad)
		var ve *models.ValidationError
		if !errors.As(err, &ve) || ve.Field != "event_id" {
			t.Fatalf("Oid(%q) err = %v, want validation error on event_id", bad, err)
		}
	}
}
