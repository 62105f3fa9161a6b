package dto

type CreatePetRequestDTO struct {
	Name             string `json:"name" validate:"required,max=100" example:"Rex"`
	Age              int    `json:"age" validate:"gte=0,lte=100" example:"3"`
	Category         string `json:"category" validate:"required,max=50" example:"Dog"`
	Location         string `json:"location" validate:"required,max=200" example:"Dhaka"`
	Image            string `json:"image" validate:"omitempty,url" example:"https://example.com/rex.png"`
	ShortDescription string `json:"shortDescription" validate:"max=500"`
	LongDescription  string `json:"longDescription"`
}

// UpdatePetRequestDTO replaces only the fields present in the body.
type UpdatePetRequestDTO struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=100"`
	Age              *int    `json:"age" validate:"omitempty,gte=0,lte=100"`
	Category         *string `json:"category" validate:"omitempty,min=1,max=50"`
	Location         *string `json:"location" validate:"omitempty,min=1,max=200"`
	Image            *string `json:"image" validate:"omitempty,url"`
	ShortDescription *string `json:"shortDescription" validate:"omitempty,max=500"`
	LongDescription  *string `json:"longDescription"`
}

type PetResponseDTO struct {
	ID               string `json:"id" example:"0c5f7a9e-3b1d-4e6f-a2c4-8d9e0f1a2b3c"`
	Name             string `json:"name" example:"Rex"`
	Age              int    `json:"age" example:"3"`
	Category         string `json:"category" example:"Dog"`
	Location         string `json:"location" example:"Dhaka"`
	Image            string `json:"image"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	AddedBy          string `json:"addedBy" example:"bob@example.com"`
	AdoptionStatus   string `json:"adoptionStatus" example:"Not Adopted"`
	AddedTime        string `json:"addedTime" example:"2024-08-01T08:00:00Z"`
}

type PetPageResponseDTO struct {
	Pets    []PetResponseDTO `json:"pets"`
	Total   int              `json:"total" example:"42"`
	HasMore bool             `json:"hasMore" example:"true"`
}
