package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldLocation is an optional geographic reference for a surveyed place.
type FieldLocation struct {
	Latitude  *float64
	Longitude *float64
	Address   string
}

// FieldContact is the person to reach at a surveyed masjid or shop.
type FieldContact struct {
	Name        string
	Designation string
	Phone       string
}

// FieldData is one field survey record (masjid/shop contact), collected
// independently of the money flow.
type FieldData struct {
	ID                uuid.UUID
	MasjidName        string
	Place             string
	Location          FieldLocation
	ContactPerson     FieldContact
	CollectionInfo    string
	YearsOfCollection *int
	Remarks           string
	SeasonID          uuid.UUID
	CreatedBy         uuid.UUID
	IsLocked          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewFieldData creates a new unlocked FieldData entity.
func NewFieldData(
	masjidName, place string,
	location FieldLocation,
	contact FieldContact,
	collectionInfo string,
	yearsOfCollection *int,
	remarks string,
	seasonID, createdBy uuid.UUID,
) *FieldData {
	now := time.Now().UTC()

	return &FieldData{
		ID:                uuid.New(),
		MasjidName:        masjidName,
		Place:             place,
		Location:          location,
		ContactPerson:     contact,
		CollectionInfo:    collectionInfo,
		YearsOfCollection: yearsOfCollection,
		Remarks:           remarks,
		SeasonID:          seasonID,
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
