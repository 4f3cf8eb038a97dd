package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// FieldDataModel represents the field_data table in the database.
type FieldDataModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	MasjidName         string    `gorm:"type:varchar(255);not null"`
	Place              string    `gorm:"type:varchar(255);not null;index"`
	Latitude           *float64  `gorm:"type:double precision"`
	Longitude          *float64  `gorm:"type:double precision"`
	Address            string    `gorm:"type:text"`
	ContactName        string    `gorm:"type:varchar(255);not null"`
	ContactDesignation string    `gorm:"type:varchar(100)"`
	ContactPhone       string    `gorm:"type:varchar(30)"`
	CollectionInfo     string    `gorm:"type:text"`
	YearsOfCollection  *int      `gorm:"type:integer"`
	Remarks            string    `gorm:"type:text"`
	SeasonID           uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedBy          uuid.UUID `gorm:"type:uuid;not null;index"`
	IsLocked           bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the FieldDataModel.
func (FieldDataModel) TableName() string {
	return "field_data"
}

// ToEntity converts a FieldDataModel to a domain FieldData entity.
func (m *FieldDataModel) ToEntity() *entity.FieldData {
	return &entity.FieldData{
		ID:         m.ID,
		MasjidName: m.MasjidName,
		Place:      m.Place,
		Location: entity.FieldLocation{
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
			Address:   m.Address,
		},
		ContactPerson: entity.FieldContact{
			Name:        m.ContactName,
			Designation: m.ContactDesignation,
			Phone:       m.ContactPhone,
		},
		CollectionInfo:    m.CollectionInfo,
		YearsOfCollection: m.YearsOfCollection,
		Remarks:           m.Remarks,
		SeasonID:          m.SeasonID,
		CreatedBy:         m.CreatedBy,
		IsLocked:          m.IsLocked,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FieldDataFromEntity creates a FieldDataModel from a domain FieldData entity.
func FieldDataFromEntity(data *entity.FieldData) *FieldDataModel {
	return &FieldDataModel{
		ID:                 data.ID,
		MasjidName:         data.MasjidName,
		Place:              data.Place,
		Latitude:           data.Location.Latitude,
		Longitude:          data.Location.Longitude,
		Address:            data.Location.Address,
		ContactName:        data.ContactPerson.Name,
		ContactDesignation: data.ContactPerson.Designation,
		ContactPhone:       data.ContactPerson.Phone,
		CollectionInfo:     data.CollectionInfo,
		YearsOfCollection:  data.YearsOfCollection,
		Remarks:            data.Remarks,
		SeasonID:           data.SeasonID,
		CreatedBy:          data.CreatedBy,
		IsLocked:           data.IsLocked,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
