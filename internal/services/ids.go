package services

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"eventhub-backend/internal/models"
	"eventhub-backend/utils"
)

const maxPageSize = 100

// newSubID mints ids for elements nested inside an event document.
func newSubID() string {
	return uuid.NewString()
}

func parseEventID(hex string) (bson.ObjectID, error) {
	return parseID("event_id", hex)
}

func parseID(field, hex string) (bson.ObjectID, error) {
	return utils.Oid(field, hex)
}

// checkPage validates page/pageSize with page counted from first.
func checkPage(page, pageSize, first int) error {
	if page < first {
		return models.Invalid("page", fmt.Sprintf("must be >= %d", first))
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return models.Invalid("page_size", fmt.Sprintf("must be between 1 and %d", maxPageSize))
	}
	return nil
}
