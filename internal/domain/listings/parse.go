package listings

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"dog-sitters/internal/domain/catalog"
)

var (
	ErrInvalidQuery = errors.New("invalid query")
)

// ParseQuery arma un QueryState desde los query params:
//
//	q=max&neighborhoods=Florentin,Old Jaffa&service_types=walk_30
//	&price_max=80&min_rating=4.5&dog_sizes=small,large
//
// Parte del estado por defecto. Tags desconocidos se conservan tal cual
// (dan listado vacío); solo los números mal formados o no finitos son error.
func ParseQuery(v url.Values) (QueryState, error) {
	f := DefaultFilters()

	if items := csv(v.Get("neighborhoods")); len(items) > 0 {
		f.Neighborhoods = items
	}

	if items := csv(v.Get("service_types")); len(items) > 0 {
		kinds := make([]catalog.ServiceKind, 0, len(items))
		for _, it := range items {
			k, ok := catalog.ParseServiceKind(it)
			if !ok {
				k = catalog.ServiceKind(it)
			}
			kinds = append(kinds, k)
		}
		f.ServiceKinds = kinds
	}

	if items := csv(v.Get("dog_sizes")); len(items) > 0 {
		sizes := make([]catalog.DogSize, 0, len(items))
		for _, it := range items {
			d, ok := catalog.ParseDogSize(it)
			if !ok {
				d = catalog.DogSize(it)
			}
			sizes = append(sizes, d)
		}
		f.DogSizes = sizes
	}

	var err error
	if f.PriceRange.Min, err = number(v, "price_min", f.PriceRange.Min); err != nil {
		return QueryState{}, err
	}
	if f.PriceRange.Max, err = number(v, "price_max", f.PriceRange.Max); err != nil {
		return QueryState{}, err
	}
	if f.MinRating, err = number(v, "min_rating", f.MinRating); err != nil {
		return QueryState{}, err
	}

	f.Availability = strings.TrimSpace(v.Get("availability"))

	return DefaultQueryState().WithSearch(v.Get("q")).WithFilters(f), nil
}

// number lee un param numérico finito; NaN e Inf desactivarían la etapa
// del filtro, así que se rechazan igual que un número mal formado.
func number(v url.Values, key string, def float64) (float64, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidQuery, key)
	}
	return n, nil
}

func csv(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
