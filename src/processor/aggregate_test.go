package processor

import (
	"testing"
	"time"

	"NoResultsReport/src/model"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func sampleTable() model.FlatTable {
	return model.FlatTable{
		{Departure: "JFK", Destination: "ORD", DepartureDate: day(3), Adults: 1, TicketClass: "Economy"},
		{Departure: "JFK", Destination: "LAX", DepartureDate: day(1), Adults: 2, Children: 1, TicketClass: "Business"},
		{Departure: "BOS", Destination: "SFO", DepartureDate: day(1), Adults: 2, Children: 1, Infants: 1, TicketClass: "Economy"},
		{Departure: "JFK", Destination: "LAX", DepartureDate: day(2), Adults: 1, TicketClass: "First"},
	}
}

func TestByAirportGroupsPairs(t *testing.T) {
	table := model.FlatTable{
		{Departure: "JFK", Destination: "LAX"},
		{Departure: "JFK", Destination: "ORD"},
		{Departure: "JFK", Destination: "LAX"},
	}

	got := ByAirport(table)
	want := []model.AirportCount{
		{Departure: "JFK", Destination: "LAX", Count: 2},
		{Departure: "JFK", Destination: "ORD", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("rows = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAggregateOrdering(t *testing.T) {
	s := Aggregate(sampleTable())

	if s.Airport[0].Departure != "BOS" || s.Airport[1].Destination != "LAX" || s.Airport[2].Destination != "ORD" {
		t.Errorf("airport order = %+v", s.Airport)
	}

	if len(s.Date) != 3 {
		t.Fatalf("date rows = %+v", s.Date)
	}
	for i, d := range []int{1, 2, 3} {
		if !s.Date[i].DepartureDate.Equal(day(d)) {
			t.Errorf("date row %d = %v, want day %d", i, s.Date[i].DepartureDate, d)
		}
	}
	if s.Date[0].Count != 2 {
		t.Errorf("2024-06-01 count = %d, want 2", s.Date[0].Count)
	}

	wantClasses := []string{"Business", "Economy", "First"}
	for i, c := range wantClasses {
		if s.TicketClass[i].TicketClass != c {
			t.Errorf("ticket class %d = %q, want %q", i, s.TicketClass[i].TicketClass, c)
		}
	}
	if s.TicketClass[1].Count != 2 {
		t.Errorf("Economy count = %d, want 2", s.TicketClass[1].Count)
	}
}

func TestByPassengersKeepsInfantsInKey(t *testing.T) {
	got := ByPassengers(sampleTable())

	want := []model.PassengerCount{
		{Adults: 1, Children: 0, Infants: 0, Count: 2},
		{Adults: 2, Children: 1, Infants: 0, Count: 1},
		{Adults: 2, Children: 1, Infants: 1, Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("rows = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAggregateCountsSumToTotal(t *testing.T) {
	table := sampleTable()
	s := Aggregate(table)

	for _, kind := range model.SummaryKinds {
		if got := s.Total(kind); got != table.Len() {
			t.Errorf("%s: count sum = %d, want %d", kind, got, table.Len())
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(model.FlatTable{})
	for _, kind := range model.SummaryKinds {
		if s.Rows(kind) != 0 {
			t.Errorf("%s: expected empty summary", kind)
		}
	}
}
