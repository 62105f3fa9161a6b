package dto

import "time"

type CreateCampaignRequestDTO struct {
	PetName          string    `json:"petName" validate:"required,max=100" example:"Milo"`
	PetImage         string    `json:"petImage" validate:"omitempty,url"`
	PetCategory      string    `json:"petCategory" validate:"required,max=50" example:"Cat"`
	MaxAmount        float64   `json:"maxAmount" validate:"gt=0" example:"500"`
	LastDate         time.Time `json:"lastDate" validate:"required" example:"2024-12-31T00:00:00Z"`
	ShortDescription string    `json:"shortDescription" validate:"max=500"`
	LongDescription  string    `json:"longDescription"`
}

type UpdateCampaignRequestDTO struct {
	PetName          *string    `json:"petName" validate:"omitempty,min=1,max=100"`
	PetImage         *string    `json:"petImage" validate:"omitempty,url"`
	PetCategory      *string    `json:"petCategory" validate:"omitempty,min=1,max=50"`
	MaxAmount        *float64   `json:"maxAmount" validate:"omitempty,gt=0"`
	LastDate         *time.Time `json:"lastDate"`
	ShortDescription *string    `json:"shortDescription" validate:"omitempty,max=500"`
	LongDescription  *string    `json:"longDescription"`
}

type SetPausedRequestDTO struct {
	Paused *bool `json:"paused" validate:"required" example:"true"`
}

type DonateRequestDTO struct {
	Amount float64 `json:"amount" validate:"gt=0" example:"25"`
}

type RefundRequestDTO struct {
	DonationID string  `json:"donationId" validate:"required" example:"3f2e1d0c-9b8a-4765-8432-10fedcba9876"`
	Amount     float64 `json:"amount" validate:"gt=0" example:"25"`
}

type DonatorDTO struct {
	Email  string  `json:"email" example:"amy@example.com"`
	Amount float64 `json:"amount" example:"25"`
	Date   string  `json:"date" example:"2024-08-01T08:00:00Z"`
}

type CampaignResponseDTO struct {
	ID               string       `json:"id" example:"3f2e1d0c-9b8a-4765-8432-10fedcba9876"`
	PetName          string       `json:"petName" example:"Milo"`
	PetImage         string       `json:"petImage"`
	PetCategory      string       `json:"petCategory" example:"Cat"`
	MaxAmount        float64      `json:"maxAmount" example:"500"`
	LastDate         string       `json:"lastDate" example:"2024-12-31T00:00:00Z"`
	ShortDescription string       `json:"shortDescription"`
	LongDescription  string       `json:"longDescription"`
	AddedBy          string       `json:"addedBy" example:"bob@example.com"`
	Paused           bool         `json:"paused"`
	TotalDonated     float64      `json:"totalDonated" example:"125"`
	Donators         []DonatorDTO `json:"donators,omitempty"`
	CreatedAt        string       `json:"createdAt" example:"2024-08-01T08:00:00Z"`
}

type CampaignPageResponseDTO struct {
	Campaigns []CampaignResponseDTO `json:"campaigns"`
	Total     int                   `json:"total" example:"12"`
	HasMore   bool                  `json:"hasMore" example:"false"`
}

type UserDonationResponseDTO struct {
	ID         string  `json:"id"`
	DonationID string  `json:"donationId" example:"3f2e1d0c-9b8a-4765-8432-10fedcba9876"`
	UserEmail  string  `json:"userEmail" example:"amy@example.com"`
	Amount     float64 `json:"amount" example:"25"`
	CreatedAt  string  `json:"createdAt" example:"2024-08-01T08:00:00Z"`
}
