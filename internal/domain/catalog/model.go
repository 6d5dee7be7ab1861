package catalog

import "time"

type Service struct {
	ID          string      `json:"id"`
	Kind        ServiceKind `json:"type"`
	Price       float64     `json:"price"`
	Description string      `json:"description,omitempty"`
}

type Availability struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Sitter es el proveedor de servicios que aparece en el listado.
type Sitter struct {
	ID           string `json:"id"`
	OwnerUserID  string `json:"owner_user_id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image,omitempty"`

	Neighborhood  string         `json:"neighborhood"` // zona donde vive
	Description   string         `json:"description"`
	Experience    string         `json:"experience"`
	Neighborhoods []string       `json:"neighborhoods"` // zonas donde trabaja
	Services      []Service      `json:"services"`
	Availability  []Availability `json:"availability"`

	Rating      float64 `json:"rating"` // 0..5
	ReviewCount int     `json:"review_count"`
	Verified    bool    `json:"verified"`

	// Referencias a documentos subidos en el registro; no se exponen.
	IDDocumentRef string `json:"-"`
	SelfieRef     string `json:"-"`

	// Solo se guarda la cuenta enmascarada.
	PayoutAccount string `json:"payout_account,omitempty"`
	PayoutBank    string `json:"payout_bank,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// MaxPrice devuelve el precio del servicio más caro.
// ok=false si el sitter no ofrece servicios.
func (s Sitter) MaxPrice() (float64, bool) {
	if len(s.Services) == 0 {
		return 0, false
	}
	max := s.Services[0].Price
	for _, svc := range s.Services[1:] {
		if svc.Price > max {
			max = svc.Price
		}
	}
	return max, true
}

// Offers indica si el sitter ofrece el servicio.
func (s Sitter) Offers(kind ServiceKind) bool {
	for _, svc := range s.Services {
		if svc.Kind == kind {
			return true
		}
	}
	return false
}

type Dog struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Breed          string      `json:"breed"`
	Age            int         `json:"age"`
	Size           DogSize     `json:"size"`
	Temperament    Temperament `json:"temperament"`
	Image          string      `json:"image,omitempty"`
	AdditionalInfo string      `json:"additional_info,omitempty"`
	Allergies      string      `json:"allergies,omitempty"`
	SpecialNeeds   string      `json:"special_needs,omitempty"`
}

// Client es el dueño del perro.
type Client struct {
	ID           string    `json:"id"`
	OwnerUserID  string    `json:"owner_user_id,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Neighborhood string    `json:"neighborhood"`
	Dogs         []Dog     `json:"dogs"`
	CreatedAt    time.Time `json:"created_at"`
}

// Dog busca un perro del cliente por ID.
func (c Client) Dog(id string) (Dog, bool) {
	for _, d := range c.Dogs {
		if d.ID == id {
			return d, true
		}
	}
	return Dog{}, false
}

// ClientRef es la parte del cliente que viaja dentro de una solicitud.
type ClientRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Neighborhood string `json:"neighborhood"`
}

// Request es una solicitud de servicio publicada por un cliente.
type Request struct {
	ID          string      `json:"id"`
	Client      ClientRef   `json:"client"`
	ServiceKind ServiceKind `json:"service_type"`

	Date time.Time `json:"date"`
	Time string    `json:"time"` // HH:MM

	Dog                 Dog     `json:"dog"`
	Neighborhood        string  `json:"neighborhood"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
	OfferedPrice        float64 `json:"offered_price"`
	Flexible            bool    `json:"flexible"`

	Status   RequestStatus `json:"status"`
	SitterID string        `json:"sitter_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
