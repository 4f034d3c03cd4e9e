package model

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SummaryKind 汇总表类型
type SummaryKind string

const (
	SummaryAirport     SummaryKind = "airport"
	SummaryDate        SummaryKind = "date"
	SummaryPassengers  SummaryKind = "passenger"
	SummaryTicketClass SummaryKind = "ticket_class"
)

// SummaryKinds 按报告输出顺序排列
var SummaryKinds = []SummaryKind{
	SummaryAirport,
	SummaryDate,
	SummaryPassengers,
	SummaryTicketClass,
}

// AirportCount 按出发/到达机场分组的计数
type AirportCount struct {
	Departure   string
	Destination string
	Count       int
}

// DateCount 按出发日期分组的计数
type DateCount struct {
	DepartureDate time.Time
	Count         int
}

// PassengerCount 按成人/儿童/婴儿人数分组的计数
type PassengerCount struct {
	Adults   int
	Children int
	Infants  int
	Count    int
}

// TicketClassCount 按舱位等级分组的计数
type TicketClassCount struct {
	TicketClass string
	Count       int
}

// Summaries 四张汇总表
type Summaries struct {
	Airport     []AirportCount
	Date        []DateCount
	Passengers  []PassengerCount
	TicketClass []TicketClassCount
}

// Rows 返回指定汇总表的行数
func (s Summaries) Rows(kind SummaryKind) int {
	switch kind {
	case SummaryAirport:
		return len(s.Airport)
	case SummaryDate:
		return len(s.Date)
	case SummaryPassengers:
		return len(s.Passengers)
	case SummaryTicketClass:
		return len(s.TicketClass)
	}
	return 0
}

// Total 返回指定汇总表计数列之和
func (s Summaries) Total(kind SummaryKind) int {
	total := 0
	switch kind {
	case SummaryAirport:
		for _, r := range s.Airport {
			total += r.Count
		}
	case SummaryDate:
		for _, r := range s.Date {
			total += r.Count
		}
	case SummaryPassengers:
		for _, r := range s.Passengers {
			total += r.Count
		}
	case SummaryTicketClass:
		for _, r := range s.TicketClass {
			total += r.Count
		}
	}
	return total
}

// DataFrame 将汇总表转换为 dataframe，最后一列为计数列
func (s Summaries) DataFrame(kind SummaryKind, countCol string) dataframe.DataFrame {
	if countCol == "" {
		countCol = DefaultCountColumn
	}

	switch kind {
	case SummaryAirport:
		deps := make([]string, len(s.Airport))
		dests := make([]string, len(s.Airport))
		counts := make([]int, len(s.Airport))
		for i, r := range s.Airport {
			deps[i], dests[i], counts[i] = r.Departure, r.Destination, r.Count
		}
		return dataframe.New(
			series.New(deps, series.String, ColDeparture),
			series.New(dests, series.String, ColDestination),
			series.New(counts, series.Int, countCol),
		)

	case SummaryDate:
		dates := make([]time.Time, len(s.Date))
		counts := make([]int, len(s.Date))
		for i, r := range s.Date {
			dates[i], counts[i] = r.DepartureDate, r.Count
		}
		return dataframe.New(
			series.New(FormatDates(dates), series.String, ColDepartureDate),
			series.New(counts, series.Int, countCol),
		)

	case SummaryPassengers:
		adults := make([]int, len(s.Passengers))
		children := make([]int, len(s.Passengers))
		infants := make([]int, len(s.Passengers))
		counts := make([]int, len(s.Passengers))
		for i, r := range s.Passengers {
			adults[i], children[i], infants[i], counts[i] = r.Adults, r.Children, r.Infants, r.Count
		}
		return dataframe.New(
			series.New(adults, series.Int, ColAdults),
			series.New(children, series.Int, ColChildren),
			series.New(infants, series.Int, ColInfants),
			series.New(counts, series.Int, countCol),
		)

	case SummaryTicketClass:
		classes := make([]string, len(s.TicketClass))
		counts := make([]int, len(s.TicketClass))
		for i, r := range s.TicketClass {
			classes[i], counts[i] = r.TicketClass, r.Count
		}
		return dataframe.New(
			series.New(classes, series.String, ColTicketClass),
			series.New(counts, series.Int, countCol),
		)
	}

	return dataframe.New()
}
