package entity

import "time"

// Species values are stored title-cased; normalization happens on the
// service write path before validation.
const (
	SpeciesDog    = "Dog"
	SpeciesCat    = "Cat"
	SpeciesBird   = "Bird"
	SpeciesRabbit = "Rabbit"
	SpeciesOther  = "Other"
)

func ValidSpecies(s string) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesOther:
		return true
	}
	return false
}

// MedicalRecord is an embedded clinical-history entry on a pet.
type MedicalRecord struct {
	Date           time.Time `json:"date"`
	Description    string    `json:"description"`
	VeterinarianID string    `json:"veterinarianId,omitempty"`
}

// Vaccination is an embedded vaccination entry on a pet.
type Vaccination struct {
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	NextDue time.Time `json:"nextDue,omitempty"`
}

// Pet belongs to exactly one client (OwnerID). Age and Weight are optional
// and non-negative when present. History and vaccinations stay embedded,
// mirroring the clinical-record document shape.
type Pet struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Species        string          `json:"species"`
	Breed          string          `json:"breed,omitempty"`
	Age            *int            `json:"age,omitempty"`
	Weight         *float64        `json:"weight,omitempty"`
	OwnerID        string          `json:"owner"`
	PhotoURL       string          `json:"photoUrl,omitempty"`
	MedicalHistory []MedicalRecord `json:"medicalHistory"`
	Vaccinations   []Vaccination   `json:"vaccinations"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
