package dto

type CreateAdoptionRequestDTO struct {
	PetID         string `json:"petId" validate:"required" example:"0c5f7a9e-3b1d-4e6f-a2c4-8d9e0f1a2b3c"`
	RequesterName string `json:"requesterName" validate:"required,max=100" example:"Amy"`
	Phone         string `json:"phone" validate:"required,max=30" example:"+8801700000000"`
	Address       string `json:"address" validate:"required,max=300" example:"12 Lake Road"`
}

type UpdateAdoptionStatusRequestDTO struct {
	Status string `json:"status" validate:"required,max=30" example:"accepted"`
	PetID  string `json:"petId" validate:"required" example:"0c5f7a9e-3b1d-4e6f-a2c4-8d9e0f1a2b3c"`
}

type AdoptionResponseDTO struct {
	ID             string `json:"id" example:"1e2d3c4b-5a69-4788-97a6-b5c4d3e2f100"`
	PetID          string `json:"petId" example:"0c5f7a9e-3b1d-4e6f-a2c4-8d9e0f1a2b3c"`
	RequesterEmail string `json:"requesterEmail" example:"amy@example.com"`
	RequesterName  string `json:"requesterName" example:"Amy"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Status         string `json:"status" example:"pending"`
	CreatedAt      string `json:"createdAt" example:"2024-08-01T08:00:00Z"`
}
