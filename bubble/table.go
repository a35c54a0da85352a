// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"sort"

	"github.com/aclements/go-gg/table"

	"github.com/cFabianR/go-nations/nations"
)

// Table converts ns to a gg table with columns "nation", "continent",
// "income", "life expectancy", and "population". Rows are ordered by
// descending population so that, with painter's-order rendering,
// small bubbles land on top of large ones and stay visible.
func Table(ns []*nations.Nation) *table.Table {
	sorted := make([]*nations.Nation, len(ns))
	copy(sorted, ns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Population > sorted[j].Population
	})

	names := make([]string, len(sorted))
	continents := make([]string, len(sorted))
	incomes := make([]float64, len(sorted))
	lifeExps := make([]float64, len(sorted))
	pops := make([]float64, len(sorted))
	for i, n := range sorted {
		names[i] = n.Name
		continents[i] = n.Continent
		incomes[i] = n.Income
		lifeExps[i] = n.LifeExpectancy
		pops[i] = float64(n.Population)
	}

	return new(table.Builder).
		Add("nation", names).
		Add("continent", continents).
		Add("income", incomes).
		Add("life expectancy", lifeExps).
		Add("population", pops).
		Done()
}

// byContinent collapses ns to one synthetic record per continent:
// population-weighted mean income and life expectancy, and summed
// population. Per-capita quantities need population weighting to
// aggregate meaningfully.
func byContinent(ns []*nations.Nation) []*nations.Nation {
	type acc struct {
		income, lifeExp float64 // population-weighted sums
		pop             int64
	}
	accs := map[string]*acc{}
	for _, n := range ns {
		a := accs[n.Continent]
		if a == nil {
			a = new(acc)
			accs[n.Continent] = a
		}
		w := float64(n.Population)
		a.income += w * n.Income
		a.lifeExp += w * n.LifeExpectancy
		a.pop += n.Population
	}

	out := make([]*nations.Nation, 0, len(accs))
	for _, c := range nations.Continents(ns) {
		a := accs[c]
		w := float64(a.pop)
		out = append(out, &nations.Nation{
			Name:           c,
			Continent:      c,
			Income:         a.income / w,
			LifeExpectancy: a.lifeExp / w,
			Population:     a.pop,
		})
	}
	return out
}
