// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article record, the category partition-key contract, the
// identifier scheme, and domain-specific errors.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-date wire format for publication dates.
const DateLayout = "2006-01-02"

// Article represents a news article stored in the catalog.
// Category is the partition/shard key of the underlying document store and
// must never be empty on a stored record. PublicationDate is always present
// after creation (defaulted to the creation date when the caller omits it).
type Article struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Author          string             `bson:"author"`
	Category        Category           `bson:"category"`
	Body            string             `bson:"body"`
	PublicationDate string             `bson:"publication_date"`
}

// Today returns the current UTC date in the catalog's date layout.
// Used to default PublicationDate at creation time.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
