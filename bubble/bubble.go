// Package bubble constructs wealth-and-health bubble charts.
//
// A bubble chart places one mark per country: income on a log x axis,
// life expectancy on a linear y axis, mark area proportional to
// population, and mark color by continent. Hovering over the plot
// shows a tooltip for the nearest country. The result is a *gg.Plot,
// rendered with its WriteSVG method.
package bubble

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/cFabianR/go-nations/ggscale"
	"github.com/cFabianR/go-nations/nations"
)

// Config controls chart construction.
type Config struct {
	// Title is the chart title. Empty means no title.
	Title string

	// ByContinent collapses the data to one bubble per continent
	// (population-weighted mean income and life expectancy,
	// summed population).
	ByContinent bool

	// Trend adds a LOESS regression line of life expectancy over
	// income.
	Trend bool
}

// New builds a bubble chart for ns. It returns an error if ns is
// empty.
func New(ns []*nations.Nation, cfg Config) (*gg.Plot, error) {
	if len(ns) == 0 {
		return nil, errors.New("no nations to plot")
	}
	if cfg.ByContinent {
		ns = byContinent(ns)
	}

	plot := gg.NewPlot(Table(ns))

	// Synthesize the hover text.
	plot.Stat(tooltip{})

	x := gg.NewLogScaler(10)
	x.SetFormatter(money)
	y := gg.NewLinearScaler()
	widen(x, y, ns)
	plot.SetScale("x", x)
	plot.SetScale("y", y)
	plot.SetScale("size", ggscale.NewSqrtScaler())
	plot.SetScale("opacity", gg.NewIdentityScale())

	plot.Add(gg.LayerPoints{
		X:       "income",
		Y:       "life expectancy",
		Color:   "continent",
		Size:    "population",
		Opacity: plot.Const(0.85),
	})

	if cfg.Trend {
		fit := ggstat.LOESS{X: "income", Y: "life expectancy"}.F(plot.Data())
		plot.Save()
		plot.SetData(fit)
		plot.Add(gg.LayerLines{X: "income", Y: "life expectancy"})
		plot.Restore()
	}

	plot.Add(gg.LayerTooltips{X: "income", Y: "life expectancy", Label: "tooltip"})

	if cfg.Title != "" {
		plot.Add(gg.Title(cfg.Title))
	}
	return plot, nil
}

// widen grows single-valued x and y domains. Tick computation cannot
// place ticks on a zero-width domain, so a dataset where every nation
// has the same income or the same life expectancy would otherwise
// render without axes or not at all.
func widen(x, y gg.ContinuousScaler, ns []*nations.Nation) {
	minI, maxI := ns[0].Income, ns[0].Income
	minL, maxL := ns[0].LifeExpectancy, ns[0].LifeExpectancy
	for _, n := range ns[1:] {
		if n.Income < minI {
			minI = n.Income
		}
		if n.Income > maxI {
			maxI = n.Income
		}
		if n.LifeExpectancy < minL {
			minL = n.LifeExpectancy
		}
		if n.LifeExpectancy > maxL {
			maxL = n.LifeExpectancy
		}
	}
	if minI == maxI {
		x.Include(minI / 2).Include(maxI * 2)
	}
	if minL == maxL {
		y.Include(minL - 1).Include(maxL + 1)
	}
}

type tooltip struct{}

func (tooltip) F(g table.Grouping) table.Grouping {
	return table.MapCols(g,
		func(nation []string, income, lifeExp, pop []float64, tooltip []string) {
			for i := range nation {
				tooltip[i] = fmt.Sprintf("%s — %s, %.1f years, %s people",
					nation[i], money(income[i]), lifeExp[i], people(pop[i]))
			}
		}, "nation", "income", "life expectancy", "population")("tooltip")
}

// money formats a dollar amount with thousands separators.
func money(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg, s = true, s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return "$" + s
}

// people formats a population count with a k/M/B suffix.
func people(v float64) string {
	switch {
	case v >= 1e9:
		return trimZero(fmt.Sprintf("%.1f", v/1e9)) + "B"
	case v >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case v >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
