package wizard

import (
	"strings"

	"dog-sitters/internal/domain/catalog"
)

const MaxInstructionsLen = 200

// -------------------------
// Solicitud (5 pasos)
// -------------------------

type RequestDraft struct {
	ServiceKind         catalog.ServiceKind `json:"service_type"`
	Date                string              `json:"date"` // YYYY-MM-DD
	Time                string              `json:"time"` // HH:MM
	DogID               string              `json:"dog_id,omitempty"`
	DogName             string              `json:"dog_name"`
	DogBreed            string              `json:"dog_breed"`
	DogSize             catalog.DogSize     `json:"dog_size"`
	Neighborhood        string              `json:"neighborhood"`
	SpecialInstructions string              `json:"special_instructions"`
	OfferedPrice        float64             `json:"offered_price"`
	Flexible            bool                `json:"flexible"`
}

func RequestFlow() Flow[RequestDraft] {
	return Flow[RequestDraft]{
		Name: "request",
		Steps: []Step[RequestDraft]{
			{Name: "service", Validate: func(d RequestDraft) []FieldError {
				var c checker
				if !d.ServiceKind.Valid() {
					c.add("service_type", "unknown service")
				}
				c.date("date", d.Date)
				c.clock("time", d.Time)
				return c.result()
			}},
			{Name: "dog", Validate: func(d RequestDraft) []FieldError {
				var c checker
				c.required("dog_name", d.DogName)
				c.required("dog_breed", d.DogBreed)
				if !d.DogSize.Valid() {
					c.add("dog_size", "unknown size")
				}
				return c.result()
			}},
			{Name: "location", Validate: func(d RequestDraft) []FieldError {
				var c checker
				neighborhood(&c, "neighborhood", d.Neighborhood)
				c.maxLen("special_instructions", d.SpecialInstructions, MaxInstructionsLen)
				return c.result()
			}},
			{Name: "price", Validate: func(d RequestDraft) []FieldError {
				var c checker
				c.positive("offered_price", d.OfferedPrice)
				return c.result()
			}},
			{Name: "summary"},
		},
	}
}

// -------------------------
// Registro de cliente (4 pasos)
// -------------------------

type DogDraft struct {
	Name           string              `json:"name"`
	Breed          string              `json:"breed"`
	Age            int                 `json:"age"`
	Size           catalog.DogSize     `json:"size"`
	Temperament    catalog.Temperament `json:"temperament"`
	Image          string              `json:"image,omitempty"`
	AdditionalInfo string              `json:"additional_info,omitempty"`
	Allergies      string              `json:"allergies,omitempty"`
	SpecialNeeds   string              `json:"special_needs,omitempty"`
}

type ClientDraft struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	ProfileImage string   `json:"profile_image,omitempty"`
	Dog          DogDraft `json:"dog"`
	Neighborhood string   `json:"neighborhood"`
}

func ClientFlow() Flow[ClientDraft] {
	return Flow[ClientDraft]{
		Name: "client",
		Steps: []Step[ClientDraft]{
			{Name: "personal", Validate: func(d ClientDraft) []FieldError {
				return personal(d.Name, d.Email, d.Phone)
			}},
			{Name: "dog", Validate: func(d ClientDraft) []FieldError {
				return ValidateDog(d.Dog)
			}},
			{Name: "neighborhood", Validate: func(d ClientDraft) []FieldError {
				var c checker
				neighborhood(&c, "neighborhood", d.Neighborhood)
				return c.result()
			}},
			{Name: "summary"},
		},
	}
}

// ValidateDog se usa en el paso "dog" y al agregar perros después del registro.
// Tamaño y temperamento son opcionales, pero si vienen tienen que ser válidos.
func ValidateDog(d DogDraft) []FieldError {
	var c checker
	c.required("dog.name", d.Name)
	c.required("dog.breed", d.Breed)
	if d.Age < 0 || d.Age > 25 {
		c.add("dog.age", "must be between 0 and 25")
	}
	if d.Size != "" && !d.Size.Valid() {
		c.add("dog.size", "unknown size")
	}
	if d.Temperament != "" && !d.Temperament.Valid() {
		c.add("dog.temperament", "unknown temperament")
	}
	return c.result()
}

// -------------------------
// Registro de sitter (5 pasos)
// -------------------------

type ServiceOffer struct {
	Kind        catalog.ServiceKind `json:"type"`
	Price       float64             `json:"price"`
	Description string              `json:"description,omitempty"`
}

type PayoutDraft struct {
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	Bank          string `json:"bank"`
}

type SitterDraft struct {
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Phone         string                 `json:"phone"`
	ProfileImage  string                 `json:"profile_image,omitempty"`
	Description   string                 `json:"description"`
	Experience    string                 `json:"experience"`
	IDDocument    string                 `json:"id_document"`
	Selfie        string                 `json:"selfie"`
	Neighborhoods []string               `json:"neighborhoods"`
	Services      []ServiceOffer         `json:"services"`
	Availability  []catalog.Availability `json:"availability,omitempty"`
	Payout        PayoutDraft            `json:"payout"`
}

func SitterFlow() Flow[SitterDraft] {
	return Flow[SitterDraft]{
		Name: "sitter",
		Steps: []Step[SitterDraft]{
			{Name: "personal", Validate: func(d SitterDraft) []FieldError {
				return personal(d.Name, d.Email, d.Phone)
			}},
			{Name: "identity", Validate: func(d SitterDraft) []FieldError {
				var c checker
				c.required("id_document", d.IDDocument)
				c.required("selfie", d.Selfie)
				return c.result()
			}},
			{Name: "activity", Validate: func(d SitterDraft) []FieldError {
				var c checker
				if len(d.Neighborhoods) == 0 {
					c.add("neighborhoods", "select at least one")
				}
				for _, n := range d.Neighborhoods {
					neighborhood(&c, "neighborhoods", n)
				}
				if len(d.Services) == 0 {
					c.add("services", "select at least one")
				}
				seen := map[catalog.ServiceKind]bool{}
				for _, s := range d.Services {
					if !s.Kind.Valid() {
						c.add("services", "unknown service "+string(s.Kind))
						continue
					}
					if seen[s.Kind] {
						c.add("services", "duplicated service "+string(s.Kind))
					}
					seen[s.Kind] = true
					c.positive("services."+string(s.Kind)+".price", s.Price)
				}
				return c.result()
			}},
			{Name: "payout", Validate: func(d SitterDraft) []FieldError {
				var c checker
				c.required("payout.account_holder", d.Payout.AccountHolder)
				if c.required("payout.account_number", d.Payout.AccountNumber) && len(digits(d.Payout.AccountNumber)) < 4 {
					c.add("payout.account_number", "too short")
				}
				c.required("payout.bank", d.Payout.Bank)
				return c.result()
			}},
			{Name: "summary"},
		},
	}
}

// MaskAccount deja solo los últimos 4 dígitos. Es lo único que se guarda.
func MaskAccount(number string) string {
	d := digits(number)
	if len(d) <= 4 {
		return strings.Repeat("*", len(d))
	}
	return strings.Repeat("*", len(d)-4) + d[len(d)-4:]
}

func personal(name, email, phone string) []FieldError {
	var c checker
	c.required("name", name)
	c.email("email", email)
	c.phone("phone", phone)
	return c.result()
}

func neighborhood(c *checker, field, v string) {
	if !c.required(field, v) {
		return
	}
	for _, n := range catalog.Neighborhoods() {
		if n == v {
			return
		}
	}
	c.add(field, "unknown neighborhood "+v)
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
