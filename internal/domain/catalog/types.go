package catalog

import "strings"

// ServiceKind define los servicios que un sitter puede ofrecer.
// @Enum walk_30, walk_60, home_visit
type ServiceKind string

const (
	ServiceWalk30    ServiceKind = "walk_30"
	ServiceWalk60    ServiceKind = "walk_60"
	ServiceHomeVisit ServiceKind = "home_visit"
)

// ServiceKinds devuelve todos los servicios en orden de declaración.
func ServiceKinds() []ServiceKind {
	return []ServiceKind{ServiceWalk30, ServiceWalk60, ServiceHomeVisit}
}

// Label devuelve el texto visible del servicio.
// Se usa también en la búsqueda libre, así que un kind nuevo
// tiene que agregarse acá o no va a ser buscable.
func (k ServiceKind) Label() string {
	switch k {
	case ServiceWalk30:
		return "30 min walk"
	case ServiceWalk60:
		return "60 min walk"
	case ServiceHomeVisit:
		return "Home visit"
	default:
		return ""
	}
}

func (k ServiceKind) Valid() bool {
	return k.Label() != ""
}

// ParseServiceKind normaliza y valida un tag de servicio.
func ParseServiceKind(s string) (ServiceKind, bool) {
	k := ServiceKind(strings.ToLower(strings.TrimSpace(s)))
	return k, k.Valid()
}

// DogSize define el tamaño del perro.
// @Enum small, medium, large
type DogSize string

const (
	DogSmall  DogSize = "small"
	DogMedium DogSize = "medium"
	DogLarge  DogSize = "large"
)

func DogSizes() []DogSize {
	return []DogSize{DogSmall, DogMedium, DogLarge}
}

func (s DogSize) Label() string {
	switch s {
	case DogSmall:
		return "Small"
	case DogMedium:
		return "Medium"
	case DogLarge:
		return "Large"
	default:
		return ""
	}
}

func (s DogSize) Valid() bool {
	return s.Label() != ""
}

func ParseDogSize(s string) (DogSize, bool) {
	d := DogSize(strings.ToLower(strings.TrimSpace(s)))
	return d, d.Valid()
}

// Temperament
// @Enum calm, energetic, mixed
type Temperament string

const (
	TemperamentCalm      Temperament = "calm"
	TemperamentEnergetic Temperament = "energetic"
	TemperamentMixed     Temperament = "mixed"
)

func (t Temperament) Valid() bool {
	switch t {
	case TemperamentCalm, TemperamentEnergetic, TemperamentMixed:
		return true
	default:
		return false
	}
}

// RequestStatus es el ciclo de vida de una solicitud.
// @Enum open, accepted, completed, cancelled
type RequestStatus string

const (
	RequestOpen      RequestStatus = "open"
	RequestAccepted  RequestStatus = "accepted"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// Neighborhoods devuelve las zonas soportadas (Tel Aviv).
func Neighborhoods() []string {
	return []string{
		"Florentin",
		"Neve Tzedek",
		"Rothschild",
		"Dizengoff",
		"North Tel Aviv",
		"Old Jaffa",
		"Ajami",
		"Shapira",
		"Old North",
		"Montefiore",
		"Lev HaIr",
		"HaTikva",
		"Ramat Aviv",
		"Tzahala",
		"Afeka",
	}
}
