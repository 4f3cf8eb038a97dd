package dto

import (
	"time"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// FieldLocationPayload is the optional geographic reference of a survey entry.
type FieldLocationPayload struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

// FieldContactPayload is the contact person of a survey entry.
type FieldContactPayload struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
}

// CreateFieldDataRequest is the payload for POST /field-data.
type CreateFieldDataRequest struct {
	MasjidName        string               `json:"masjidName" binding:"required"`
	Place             string               `json:"place" binding:"required"`
	Location          FieldLocationPayload `json:"location"`
	ContactPerson     FieldContactPayload  `json:"contactPerson" binding:"required"`
	CollectionInfo    string               `json:"collectionInfo"`
	YearsOfCollection *int                 `json:"yearsOfCollection"`
	Remarks           string               `json:"remarks"`
}

// UpdateFieldDataRequest is the payload for PATCH /field-data/:id. Nil fields
// are left unchanged.
type UpdateFieldDataRequest struct {
	MasjidName        *string               `json:"masjidName"`
	Place             *string               `json:"place"`
	Location          *FieldLocationPayload `json:"location"`
	ContactPerson     *FieldContactPayload  `json:"contactPerson"`
	CollectionInfo    *string               `json:"collectionInfo"`
	YearsOfCollection *int                  `json:"yearsOfCollection"`
	Remarks           *string               `json:"remarks"`
}

// FieldDataResponse is the full survey entry payload.
type FieldDataResponse struct {
	ID                string               `json:"id"`
	MasjidName        string               `json:"masjidName"`
	Place             string               `json:"place"`
	Location          FieldLocationPayload `json:"location"`
	ContactPerson     FieldContactPayload  `json:"contactPerson"`
	CollectionInfo    string               `json:"collectionInfo,omitempty"`
	YearsOfCollection *int                 `json:"yearsOfCollection"`
	Remarks           string               `json:"remarks,omitempty"`
	SeasonID          string               `json:"seasonId"`
	CreatedBy         string               `json:"createdBy"`
	IsLocked          bool                 `json:"isLocked"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

// FieldDataListResponse wraps a list of survey entries.
type FieldDataListResponse struct {
	Entries []FieldDataResponse `json:"entries"`
}

// ToFieldDataResponse converts a FieldData entity to a FieldDataResponse.
func ToFieldDataResponse(data *entity.FieldData) FieldDataResponse {
	return FieldDataResponse{
		ID:         data.ID.String(),
		MasjidName: data.MasjidName,
		Place:      data.Place,
		Location: FieldLocationPayload{
			Latitude:  data.Location.Latitude,
			Longitude: data.Location.Longitude,
			Address:   data.Location.Address,
		},
		ContactPerson: FieldContactPayload{
			Name:        data.ContactPerson.Name,
			Designation: data.ContactPerson.Designation,
			Phone:       data.ContactPerson.Phone,
		},
		CollectionInfo:    data.CollectionInfo,
		YearsOfCollection: data.YearsOfCollection,
		Remarks:           data.Remarks,
		SeasonID:          data.SeasonID.String(),
		CreatedBy:         data.CreatedBy.String(),
		IsLocked:          data.IsLocked,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// ToFieldDataListResponse converts a list of FieldData entities to a FieldDataListResponse.
func ToFieldDataListResponse(entries []*entity.FieldData) FieldDataListResponse {
	responses := make([]FieldDataResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToFieldDataResponse(entry)
	}
	return FieldDataListResponse{Entries: responses}
}
