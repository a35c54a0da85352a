// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nations reads country statistics data sets.
//
// A data set is a list of records giving, for each country, its
// continent, income (GDP per capita at purchasing power parity, in
// dollars), life expectancy at birth in years, and population. Data
// sets can be read from CSV or JSON.
package nations

import (
	"fmt"
	"sort"
)

// A Nation records the statistics of a single country (one record of
// a data set).
type Nation struct {
	// Name is the country's display name.
	Name string

	// Continent is the continent the country is assigned to. It
	// is an arbitrary non-empty label; data sets that group by
	// region rather than continent work the same way.
	Continent string

	// Income is GDP per capita, purchasing power parity, in
	// dollars. It must be positive, since income is conventionally
	// shown on a logarithmic scale.
	Income float64

	// LifeExpectancy is life expectancy at birth, in years.
	LifeExpectancy float64

	// Population is the country's population.
	Population int64
}

func (n *Nation) check() error {
	switch {
	case n.Name == "":
		return fmt.Errorf("missing name")
	case n.Continent == "":
		return fmt.Errorf("%s: missing continent", n.Name)
	case !(n.Income > 0):
		return fmt.Errorf("%s: income %v not positive", n.Name, n.Income)
	case !(n.LifeExpectancy > 0):
		return fmt.Errorf("%s: life expectancy %v not positive", n.Name, n.LifeExpectancy)
	case n.Population <= 0:
		return fmt.Errorf("%s: population %v not positive", n.Name, n.Population)
	}
	return nil
}

// Continents returns the distinct continents appearing in ns, sorted.
func Continents(ns []*Nation) []string {
	seen := map[string]bool{}
	var cs []string
	for _, n := range ns {
		if !seen[n.Continent] {
			seen[n.Continent] = true
			cs = append(cs, n.Continent)
		}
	}
	sort.Strings(cs)
	return cs
}
