package listings

import "dog-sitters/internal/domain/catalog"

// MatchRequest decide si una solicitud entra en el listado para q.
func MatchRequest(r catalog.Request, q QueryState) bool {
	if n := needle(q.Search); n != "" && !requestMatchesText(r, n) {
		return false
	}

	f := q.Filters

	// La solicitud tiene una sola zona: pertenencia simple.
	if len(f.Neighborhoods) > 0 && !containsString(f.Neighborhoods, r.Neighborhood) {
		return false
	}

	if len(f.ServiceKinds) > 0 && !containsKind(f.ServiceKinds, r.ServiceKind) {
		return false
	}

	if r.OfferedPrice > f.PriceRange.Max {
		return false
	}

	if len(f.DogSizes) > 0 && !containsSize(f.DogSizes, r.Dog.Size) {
		return false
	}

	return true
}

// FilterRequests devuelve las solicitudes que matchean, en el orden del catálogo.
func FilterRequests(requests []catalog.Request, q QueryState) []catalog.Request {
	out := make([]catalog.Request, 0, len(requests))
	for _, r := range requests {
		if MatchRequest(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func requestMatchesText(r catalog.Request, n string) bool {
	return containsFold(r.Client.Name, n) ||
		containsFold(r.Neighborhood, n) ||
		containsFold(r.Dog.Name, n) ||
		containsFold(r.ServiceKind.Label(), n) ||
		containsFold(r.Dog.Breed, n)
}
