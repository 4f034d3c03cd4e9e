package model

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// 列名
const (
	ColTimestamp     = "Timestamp"
	ColDeparture     = "Departure"
	ColDestination   = "Destination"
	ColDepartureDate = "DepartureDate"
	ColAdults        = "Adults"
	ColChildren      = "Children"
	ColInfants       = "Infants"
	ColTicketClass   = "TicketClass"
	ColSource        = "Source"

	// DefaultCountColumn 汇总表计数列的默认列名
	DefaultCountColumn = "no_results_count"
)

// FlatRecord 展平后的一条搜索记录，创建后不再修改
type FlatRecord struct {
	Timestamp     time.Time
	Departure     string
	Destination   string
	DepartureDate time.Time
	Adults        int
	Children      int
	Infants       int
	TicketClass   string
	Source        string
}

// FlatTable 按输入顺序排列的展平记录
type FlatTable []FlatRecord

// Len 记录总数
func (t FlatTable) Len() int { return len(t) }

// DataFrame 将展平记录转换为 dataframe，列顺序固定为九列
func (t FlatTable) DataFrame() dataframe.DataFrame {
	n := len(t)
	timestamps := make([]string, n)
	departures := make([]string, n)
	destinations := make([]string, n)
	dates := make([]time.Time, n)
	adults := make([]int, n)
	children := make([]int, n)
	infants := make([]int, n)
	classes := make([]string, n)
	sources := make([]string, n)

	for i, r := range t {
		timestamps[i] = r.Timestamp.UTC().Format(time.RFC3339)
		departures[i] = r.Departure
		destinations[i] = r.Destination
		dates[i] = r.DepartureDate
		adults[i] = r.Adults
		children[i] = r.Children
		infants[i] = r.Infants
		classes[i] = r.TicketClass
		sources[i] = r.Source
	}

	return dataframe.New(
		series.New(timestamps, series.String, ColTimestamp),
		series.New(departures, series.String, ColDeparture),
		series.New(destinations, series.String, ColDestination),
		series.New(FormatDates(dates), series.String, ColDepartureDate),
		series.New(adults, series.Int, ColAdults),
		series.New(children, series.Int, ColChildren),
		series.New(infants, series.Int, ColInfants),
		series.New(classes, series.String, ColTicketClass),
		series.New(sources, series.String, ColSource),
	)
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// FormatDates 整列使用同一种格式：全部为 UTC 零点时只输出日期，
// 只要有一个值带时分秒，整列都输出完整时间
func FormatDates(ts []time.Time) []string {
	layout := dateLayout
	for _, t := range ts {
		t = t.UTC()
		if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
			layout = dateTimeLayout
			break
		}
	}

	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.UTC().Format(layout)
	}
	return out
}
