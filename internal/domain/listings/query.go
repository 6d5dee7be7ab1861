package listings

import "dog-sitters/internal/domain/catalog"

// DefaultPriceCeiling es el tope del slider de precio en la UI.
const DefaultPriceCeiling = 200

type PriceRange struct {
	Min float64 `json:"min"` // no se usa para filtrar
	Max float64 `json:"max"`
}

// Filters es el conjunto estructurado que se aplica de una sola vez
// desde el modal de filtros. Listas vacías = sin restricción.
type Filters struct {
	Neighborhoods []string              `json:"neighborhoods"`
	ServiceKinds  []catalog.ServiceKind `json:"service_types"`
	PriceRange    PriceRange            `json:"price_range"`
	MinRating     float64               `json:"rating"` // 0 = sin restricción
	Availability  string                `json:"availability"`
	DogSizes      []catalog.DogSize     `json:"dog_size"` // solo aplica a solicitudes
}

// QueryState es búsqueda libre + filtros. Se trata como valor inmutable:
// los With* devuelven una copia y nunca tocan el original.
type QueryState struct {
	Search  string  `json:"search"`
	Filters Filters `json:"filters"`
}

func DefaultFilters() Filters {
	return Filters{
		Neighborhoods: []string{},
		ServiceKinds:  []catalog.ServiceKind{},
		PriceRange:    PriceRange{Min: 0, Max: DefaultPriceCeiling},
		MinRating:     0,
		Availability:  "",
		DogSizes:      []catalog.DogSize{},
	}
}

func DefaultQueryState() QueryState {
	return QueryState{Search: "", Filters: DefaultFilters()}
}

// WithSearch reemplaza solo el texto de búsqueda.
func (q QueryState) WithSearch(search string) QueryState {
	return QueryState{Search: search, Filters: q.Filters.clone()}
}

// WithFilters reemplaza el objeto de filtros completo (el "aplicar" del modal).
// No valida valores: un tope negativo simplemente no matchea nada.
func (q QueryState) WithFilters(f Filters) QueryState {
	return QueryState{Search: q.Search, Filters: f.clone()}
}

// Reset vuelve al estado por defecto.
func (q QueryState) Reset() QueryState {
	return DefaultQueryState()
}

func (f Filters) clone() Filters {
	out := f
	out.Neighborhoods = append([]string{}, f.Neighborhoods...)
	out.ServiceKinds = append([]catalog.ServiceKind{}, f.ServiceKinds...)
	out.DogSizes = append([]catalog.DogSize{}, f.DogSizes...)
	return out
}
