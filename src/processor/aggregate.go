package processor

import (
	"sort"
	"time"

	"NoResultsReport/src/model"
)

type airportKey struct {
	departure   string
	destination string
}

type passengerKey struct {
	adults   int
	children int
	infants  int
}

// Aggregate 计算四张分组计数表，空表返回四张空汇总表
func Aggregate(table model.FlatTable) model.Summaries {
	return model.Summaries{
		Airport:     ByAirport(table),
		Date:        ByDepartureDate(table),
		Passengers:  ByPassengers(table),
		TicketClass: ByTicketClass(table),
	}
}

// ByAirport 按(出发, 到达)分组，先按出发再按到达升序
func ByAirport(table model.FlatTable) []model.AirportCount {
	counts := make(map[airportKey]int)
	for _, r := range table {
		counts[airportKey{r.Departure, r.Destination}]++
	}

	rows := make([]model.AirportCount, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, model.AirportCount{Departure: k.departure, Destination: k.destination, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Departure != rows[j].Departure {
			return rows[i].Departure < rows[j].Departure
		}
		return rows[i].Destination < rows[j].Destination
	})
	return rows
}

// ByDepartureDate 按出发时间分组，时间升序
func ByDepartureDate(table model.FlatTable) []model.DateCount {
	// time.Time 含时区指针，统一换成 UnixNano 作为键
	counts := make(map[int64]int)
	for _, r := range table {
		counts[r.DepartureDate.UnixNano()]++
	}

	rows := make([]model.DateCount, 0, len(counts))
	for ns, n := range counts {
		rows = append(rows, model.DateCount{DepartureDate: time.Unix(0, ns).UTC(), Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].DepartureDate.Before(rows[j].DepartureDate)
	})
	return rows
}

// ByPassengers 按(成人, 儿童, 婴儿)三元组分组，字典序升序
func ByPassengers(table model.FlatTable) []model.PassengerCount {
	counts := make(map[passengerKey]int)
	for _, r := range table {
		counts[passengerKey{r.Adults, r.Children, r.Infants}]++
	}

	rows := make([]model.PassengerCount, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, model.PassengerCount{Adults: k.adults, Children: k.children, Infants: k.infants, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Adults != b.Adults {
			return a.Adults < b.Adults
		}
		if a.Children != b.Children {
			return a.Children < b.Children
		}
		return a.Infants < b.Infants
	})
	return rows
}

// ByTicketClass 按舱位等级分组，字典序升序
func ByTicketClass(table model.FlatTable) []model.TicketClassCount {
	counts := make(map[string]int)
	for _, r := range table {
		counts[r.TicketClass]++
	}

	rows := make([]model.TicketClassCount, 0, len(counts))
	for class, n := range counts {
		rows = append(rows, model.TicketClassCount{TicketClass: class, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TicketClass < rows[j].TicketClass
	})
	return rows
}
