package listings

import (
	"errors"
	"net/url"
	"testing"

	"dog-sitters/internal/domain/catalog"
)

func TestParseQuery_EmptyIsDefault(t *testing.T) {
	q, err := ParseQuery(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultQueryState()
	if q.Search != def.Search || q.Filters.PriceRange != def.Filters.PriceRange || q.Filters.MinRating != 0 {
		t.Fatalf("expected default state, got %+v", q)
	}
	if q.Filters.Neighborhoods == nil || q.Filters.ServiceKinds == nil || q.Filters.DogSizes == nil {
		t.Fatalf("lists must be empty, not nil: %+v", q.Filters)
	}
}

func TestParseQuery_AllParams(t *testing.T) {
	v, _ := url.ParseQuery("q=Max&neighborhoods=Florentin,%20Old%20Jaffa,&service_types=WALK_30,home_visit&dog_sizes=small,Large&price_min=10&price_max=80&min_rating=4.5&availability=weekends")

	q, err := ParseQuery(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Search != "Max" {
		t.Fatalf("search should be kept verbatim, got %q", q.Search)
	}
	if len(q.Filters.Neighborhoods) != 2 || q.Filters.Neighborhoods[1] != "Old Jaffa" {
		t.Fatalf("neighborhoods: %+v", q.Filters.Neighborhoods)
	}
	if len(q.Filters.ServiceKinds) != 2 || q.Filters.ServiceKinds[0] != catalog.ServiceWalk30 || q.Filters.ServiceKinds[1] != catalog.ServiceHomeVisit {
		t.Fatalf("service kinds: %+v", q.Filters.ServiceKinds)
	}
	if len(q.Filters.DogSizes) != 2 || q.Filters.DogSizes[1] != catalog.DogLarge {
		t.Fatalf("dog sizes: %+v", q.Filters.DogSizes)
	}
	if q.Filters.PriceRange.Min != 10 || q.Filters.PriceRange.Max != 80 {
		t.Fatalf("price range: %+v", q.Filters.PriceRange)
	}
	if q.Filters.MinRating != 4.5 || q.Filters.Availability != "weekends" {
		t.Fatalf("rating/availability: %+v", q.Filters)
	}
}

func TestParseQuery_UnknownTagsAreKept(t *testing.T) {
	v := url.Values{"service_types": {"grooming"}}

	q, err := ParseQuery(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Filters.ServiceKinds) != 1 || q.Filters.ServiceKinds[0] != "grooming" {
		t.Fatalf("expected unknown kind kept, got %+v", q.Filters.ServiceKinds)
	}
	if got := FilterSitters(sampleSitters(), q); len(got) != 0 {
		t.Fatalf("unknown kind should match nothing, got %d", len(got))
	}
}

func TestParseQuery_BadNumbers(t *testing.T) {
	cases := []url.Values{
		{"price_max": {"cheap"}},
		{"price_min": {"x"}},
		{"min_rating": {"five"}},
		{"price_max": {"NaN"}},
		{"price_min": {"-Inf"}},
		{"price_max": {"+Inf"}},
		{"min_rating": {"nan"}},
		{"min_rating": {"Infinity"}},
	}
	for _, v := range cases {
		if _, err := ParseQuery(v); !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("expected ErrInvalidQuery for %v, got %v", v, err)
		}
	}
}

func TestParseQuery_NaNCeilingNeverReachesPredicates(t *testing.T) {
	q, err := ParseQuery(url.Values{"price_max": {"NaN"}})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if q.Filters.PriceRange.Max != 0 || len(q.Filters.Neighborhoods) != 0 {
		t.Fatalf("expected zero state on error, got %+v", q)
	}
}
