package listings

import "dog-sitters/internal/domain/catalog"

// MatchSitter decide si un sitter entra en el listado para q.
// Todas las etapas se combinan con AND; el texto es un OR entre campos.
func MatchSitter(s catalog.Sitter, q QueryState) bool {
	if n := needle(q.Search); n != "" && !sitterMatchesText(s, n) {
		return false
	}

	f := q.Filters

	if len(f.Neighborhoods) > 0 && !intersects(f.Neighborhoods, s.Neighborhoods) {
		return false
	}

	if len(f.ServiceKinds) > 0 && !sitterOffersAny(s, f.ServiceKinds) {
		return false
	}

	// Se compara contra el servicio MÁS caro. Sin servicios no hay precio
	// con qué comparar, así que el sitter queda afuera.
	maxPrice, ok := s.MaxPrice()
	if !ok || maxPrice > f.PriceRange.Max {
		return false
	}

	if f.MinRating > 0 && s.Rating < f.MinRating {
		return false
	}

	return true
}

// FilterSitters devuelve los sitters que matchean, en el orden del catálogo.
func FilterSitters(sitters []catalog.Sitter, q QueryState) []catalog.Sitter {
	out := make([]catalog.Sitter, 0, len(sitters))
	for _, s := range sitters {
		if MatchSitter(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func sitterMatchesText(s catalog.Sitter, n string) bool {
	if containsFold(s.Name, n) || anyContainsFold(s.Neighborhoods, n) || containsFold(s.Description, n) {
		return true
	}
	for _, svc := range s.Services {
		if containsFold(svc.Kind.Label(), n) {
			return true
		}
	}
	return false
}

func sitterOffersAny(s catalog.Sitter, kinds []catalog.ServiceKind) bool {
	for _, svc := range s.Services {
		if containsKind(kinds, svc.Kind) {
			return true
		}
	}
	return false
}
