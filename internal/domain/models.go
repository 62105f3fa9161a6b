package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	PetNotAdopted = "Not Adopted"
	PetAdopted    = "Adopted"
)

const RequestPending = "pending"

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	PhotoURL  string    `db:"photo_url"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Pet struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	Age              int       `db:"age"`
	Category         string    `db:"category"`
	Location         string    `db:"location"`
	Image            string    `db:"image"`
	ShortDescription string    `db:"short_description"`
	LongDescription  string    `db:"long_description"`
	AddedBy          string    `db:"added_by"`
	AdoptionStatus   string    `db:"adoption_status"`
	AddedTime        time.Time `db:"added_time"`
}

// PetFilter narrows pet listings. Empty fields are ignored.
type PetFilter struct {
	Name           string
	Location       string
	AdoptionStatus string
	AddedBy        string
	// Category and Search are case-insensitive substring matches.
	Category string
	Search   string
}

type Page struct {
	Page  int
	Limit int
}

func (p Page) Skip() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

type PetPage struct {
	Items   []Pet
	Total   int
	HasMore bool
}

type AdoptionRequest struct {
	ID             string    `db:"id"`
	PetID          string    `db:"pet_id"`
	RequesterEmail string    `db:"requester_email"`
	RequesterName  string    `db:"requester_name"`
	Phone          string    `db:"phone"`
	Address        string    `db:"address"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

type DonationCampaign struct {
	ID               string    `db:"id"`
	PetName          string    `db:"pet_name"`
	PetImage         string    `db:"pet_image"`
	PetCategory      string    `db:"pet_category"`
	MaxAmount        Cents     `db:"max_amount"`
	LastDate         time.Time `db:"last_date"`
	ShortDescription string    `db:"short_description"`
	LongDescription  string    `db:"long_description"`
	AddedBy          string    `db:"added_by"`
	Paused           bool      `db:"paused"`
	TotalDonated     Cents     `db:"total_donated"`
	Donators         []Donator
	CreatedAt        time.Time `db:"created_at"`
}

type Donator struct {
	ID         int64     `db:"id"`
	CampaignID string    `db:"campaign_id"`
	Email      string    `db:"email"`
	Amount     Cents     `db:"amount"`
	DonatedAt  time.Time `db:"donated_at"`
}

type CampaignPage struct {
	Items   []DonationCampaign
	Total   int
	HasMore bool
}

type UserDonation struct {
	ID         string    `db:"id"`
	CampaignID string    `db:"campaign_id"`
	UserEmail  string    `db:"user_email"`
	Amount     Cents     `db:"amount"`
	CreatedAt  time.Time `db:"created_at"`
}

// PetPatch carries the fields an update replaces. Nil fields are kept.
type PetPatch struct {
	Name             *string
	Age              *int
	Category         *string
	Location         *string
	Image            *string
	ShortDescription *string
	LongDescription  *string
}

func (p PetPatch) Apply(pet *Pet) {
	setString(&pet.Name, p.Name)
	if p.Age != nil {
		pet.Age = *p.Age
	}
	setString(&pet.Category, p.Category)
	setString(&pet.Location, p.Location)
	setString(&pet.Image, p.Image)
	setString(&pet.ShortDescription, p.ShortDescription)
	setString(&pet.LongDescription, p.LongDescription)
}

type CampaignPatch struct {
	PetName          *string
	PetImage         *string
	PetCategory      *string
	MaxAmount        *Cents
	LastDate         *time.Time
	ShortDescription *string
	LongDescription  *string
}

func (p CampaignPatch) Apply(c *DonationCampaign) {
	setString(&c.PetName, p.PetName)
	setString(&c.PetImage, p.PetImage)
	setString(&c.PetCategory, p.PetCategory)
	if p.MaxAmount != nil {
		c.MaxAmount = *p.MaxAmount
	}
	if p.LastDate != nil {
		c.LastDate = *p.LastDate
	}
	setString(&c.ShortDescription, p.ShortDescription)
	setString(&c.LongDescription, p.LongDescription)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
