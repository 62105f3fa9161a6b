package dto

type PaymentIntentRequestDTO struct {
	Amount float64 `json:"amount" validate:"gt=0" example:"19.99"`
}

type PaymentIntentResponseDTO struct {
	ClientSecret string `json:"clientSecret" example:"pi_123_secret_456"`
}
