package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"NoResultsReport/src/model"
	"NoResultsReport/src/storage"
	"NoResultsReport/src/utils"
)

const (
	figureWidth  = 10 * vg.Inch
	figureHeight = 6 * vg.Inch
	pieSize      = 700 // 像素，对应 7x7 英寸
	yAxisLabel   = "No Results Count"
)

// ChartRenderer 为每张汇总表生成一张 PNG 图表
type ChartRenderer struct {
	logger *storage.Logger
}

func NewChartRenderer(logger *storage.Logger) *ChartRenderer {
	return &ChartRenderer{logger: logger}
}

// RenderAll 依次生成四张图表；空汇总表没有可画的数据，跳过
// 任何写入失败都直接返回
func (r *ChartRenderer) RenderAll(s model.Summaries, pathFor PathFunc) ([]string, error) {
	rendered := make([]string, 0, len(model.SummaryKinds))
	for _, kind := range model.SummaryKinds {
		path := pathFor(kind)
		if s.Rows(kind) == 0 {
			r.logger.Warning("汇总表为空，跳过图表", "summary", string(kind), "path", path)
			continue
		}
		if err := r.Render(kind, s, path); err != nil {
			return rendered, err
		}
		r.logger.Info("图表已保存", "summary", string(kind), "path", path)
		rendered = append(rendered, path)
	}
	return rendered, nil
}

// Render 生成单张图表
func (r *ChartRenderer) Render(kind model.SummaryKind, s model.Summaries, path string) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("创建图表目录失败: %w", err)
	}

	var err error
	switch kind {
	case model.SummaryAirport:
		err = airportChart(s.Airport, path)
	case model.SummaryDate:
		err = dateChart(s.Date, path)
	case model.SummaryPassengers:
		err = passengerChart(s.Passengers, path)
	case model.SummaryTicketClass:
		err = ticketClassChart(s.TicketClass, path)
	default:
		err = fmt.Errorf("unknown summary kind %q", kind)
	}
	if err != nil {
		return fmt.Errorf("生成图表失败 %s: %w", path, err)
	}
	return nil
}

// 出发机场为横轴，每个到达机场一组柱
func airportChart(rows []model.AirportCount, path string) error {
	var departures, destinations []string
	for _, row := range rows {
		if !utils.Contains(departures, row.Departure) {
			departures = append(departures, row.Departure)
		}
		if !utils.Contains(destinations, row.Destination) {
			destinations = append(destinations, row.Destination)
		}
	}
	sort.Strings(departures)
	sort.Strings(destinations)

	groups := make([]barGroup, len(destinations))
	for i, dest := range destinations {
		groups[i] = barGroup{label: dest, values: make(plotter.Values, len(departures))}
	}
	for _, row := range rows {
		g := indexOf(destinations, row.Destination)
		groups[g].values[indexOf(departures, row.Departure)] = float64(row.Count)
	}

	p, err := groupedBarPlot("No Results Count by Departure and Destination Airports", "Departure Airport", departures, groups)
	if err != nil {
		return err
	}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return p.Save(figureWidth, figureHeight, path)
}

// 时间轴折线图，带圆点标记
func dateChart(rows []model.DateCount, path string) error {
	pts := make(plotter.XYs, len(rows))
	for i, row := range rows {
		pts[i].X = float64(row.DepartureDate.Unix())
		pts[i].Y = float64(row.Count)
	}

	p := plot.New()
	p.Title.Text = "No Results Count by Departure Date"
	p.X.Label.Text = "Departure Date"
	p.Y.Label.Text = yAxisLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	points.Shape = draw.CircleGlyph{}
	points.Color = plotutil.Color(0)
	p.Add(line, points)

	return p.Save(figureWidth, figureHeight, path)
}

// 成人数为横轴，每个儿童数一组柱；婴儿数不参与绘图，
// 同一(成人, 儿童)下多个婴儿数的计数取平均值
func passengerChart(rows []model.PassengerCount, path string) error {
	var adults, children []int
	for _, row := range rows {
		if !utils.Contains(adults, row.Adults) {
			adults = append(adults, row.Adults)
		}
		if !utils.Contains(children, row.Children) {
			children = append(children, row.Children)
		}
	}
	sort.Ints(adults)
	sort.Ints(children)

	sums := make(map[[2]int]float64)
	ns := make(map[[2]int]int)
	for _, row := range rows {
		k := [2]int{row.Adults, row.Children}
		sums[k] += float64(row.Count)
		ns[k]++
	}

	categories := make([]string, len(adults))
	for i, a := range adults {
		categories[i] = strconv.Itoa(a)
	}

	groups := make([]barGroup, len(children))
	for g, c := range children {
		values := make(plotter.Values, len(adults))
		for i, a := range adults {
			k := [2]int{a, c}
			if ns[k] > 0 {
				values[i] = sums[k] / float64(ns[k])
			}
		}
		groups[g] = barGroup{label: fmt.Sprintf("Children %d", c), values: values}
	}

	p, err := groupedBarPlot("No Results Count by Passenger Count (Adults/Children)", "Number of Adults", categories, groups)
	if err != nil {
		return err
	}
	return p.Save(figureWidth, figureHeight, path)
}

// 饼图，标签附带百分比
func ticketClassChart(rows []model.TicketClassCount, path string) (err error) {
	total := 0
	for _, row := range rows {
		total += row.Count
	}

	values := make([]chart.Value, len(rows))
	for i, row := range rows {
		pct := 100 * float64(row.Count) / float64(total)
		values[i] = chart.Value{
			Value: float64(row.Count),
			Label: fmt.Sprintf("%s (%.1f%%)", row.TicketClass, pct),
		}
	}

	pie := chart.PieChart{
		Title:  "No Results Count by Ticket Class",
		Width:  pieSize,
		Height: pieSize,
		Values: values,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return pie.Render(chart.PNG, f)
}

type barGroup struct {
	label  string
	values plotter.Values
}

func groupedBarPlot(title, xLabel string, categories []string, groups []barGroup) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yAxisLabel

	w := barWidth(len(groups))
	for i, g := range groups {
		bars, err := plotter.NewBarChart(g.values, w)
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(float64(i)-float64(len(groups)-1)/2) * w
		p.Add(bars)
		p.Legend.Add(g.label, bars)
	}
	p.Legend.Top = true
	p.NominalX(categories...)
	return p, nil
}

// 每组柱总宽度固定，组内柱数越多单柱越窄
func barWidth(n int) vg.Length {
	if n < 1 {
		n = 1
	}
	w := vg.Points(48) / vg.Length(n)
	if w < vg.Points(4) {
		w = vg.Points(4)
	}
	return w
}

func indexOf[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
