package listings

import (
	"strings"

	"dog-sitters/internal/domain/catalog"
)

// needle normaliza la búsqueda; "" significa que no hay filtro de texto.
func needle(search string) string {
	return strings.ToLower(strings.TrimSpace(search))
}

func containsFold(hay, needle string) bool {
	return strings.Contains(strings.ToLower(hay), needle)
}

func anyContainsFold(hays []string, needle string) bool {
	for _, h := range hays {
		if containsFold(h, needle) {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if containsString(b, x) {
			return true
		}
	}
	return false
}

func containsKind(set []catalog.ServiceKind, k catalog.ServiceKind) bool {
	for _, s := range set {
		if s == k {
			return true
		}
	}
	return false
}

func containsSize(set []catalog.DogSize, d catalog.DogSize) bool {
	for _, s := range set {
		if s == d {
			return true
		}
	}
	return false
}
