package dto

type SendMailRequestDTO struct {
	To      string `json:"to" validate:"required,email" example:"bob@example.com"`
	Subject string `json:"subject" validate:"required,max=200" example:"About Rex"`
	HTML    string `json:"html" validate:"required"`
}
