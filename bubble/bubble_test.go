// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cFabianR/go-nations/nations"
)

var testNations = []*nations.Nation{
	{Name: "Chad", Continent: "Africa", Income: 1763, LifeExpectancy: 54.3, Population: 14453000},
	{Name: "China", Continent: "Asia", Income: 16000, LifeExpectancy: 76.5, Population: 1376000000},
	{Name: "Norway", Continent: "Europe", Income: 64304, LifeExpectancy: 82.1, Population: 5305000},
	{Name: "France", Continent: "Europe", Income: 41005, LifeExpectancy: 82.7, Population: 64457000},
	{Name: "India", Continent: "Asia", Income: 6427, LifeExpectancy: 68.6, Population: 1311000000},
}

func TestNewEmpty(t *testing.T) {
	if _, err := New(nil, Config{}); err == nil {
		t.Errorf("want error for empty data set, got nil")
	}
}

func TestWriteSVG(t *testing.T) {
	p, err := New(testNations, Config{Title: "Wealth and Health of Nations"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, 1000, 700); err != nil {
		t.Fatal(err)
	}
	svg := buf.String()

	if !strings.Contains(svg, "<svg") {
		t.Errorf("output does not look like SVG: %.80q", svg)
	}
	if !strings.Contains(svg, "<circle") {
		t.Errorf("no point marks in output")
	}
	// The tooltip data rides along in the SVG.
	for _, want := range []string{"Chad", "Norway", "$16,000"} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing tooltip text %q", want)
		}
	}
	if !strings.Contains(svg, "Wealth and Health of Nations") {
		t.Errorf("output missing title")
	}
	// Point marks are translucent so overlapping bubbles stay
	// visible.
	if !strings.Contains(svg, "opacity:0.85") {
		t.Errorf("point marks are not translucent")
	}
}

func TestWriteSVGSingleNation(t *testing.T) {
	// A single nation means single-valued x and y domains, which
	// must still render.
	p, err := New(testNations[2:3], Config{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, 500, 400); err != nil {
		t.Fatal(err)
	}
	if svg := buf.String(); !strings.Contains(svg, "<circle") {
		t.Errorf("no point marks in output")
	}
}

func TestTooltipStat(t *testing.T) {
	p, err := New(testNations, Config{})
	if err != nil {
		t.Fatal(err)
	}
	g := p.Data()
	tab := g.Table(g.Tables()[0])
	tips := tab.MustColumn("tooltip").([]string)

	// Rows are in descending population order, so China is first.
	want := "China — $16,000, 76.5 years, 1.4B people"
	if tips[0] != want {
		t.Errorf("tooltip[0] = %q, want %q", tips[0], want)
	}
}

func TestTable(t *testing.T) {
	tab := Table(testNations)
	if tab.Len() != len(testNations) {
		t.Fatalf("table has %d rows, want %d", tab.Len(), len(testNations))
	}

	// Rows are in descending population order.
	pops := tab.MustColumn("population").([]float64)
	for i := 1; i < len(pops); i++ {
		if pops[i] > pops[i-1] {
			t.Errorf("population %v not in descending order", pops)
			break
		}
	}
	names := tab.MustColumn("nation").([]string)
	if names[0] != "China" {
		t.Errorf("first row is %q, want China (largest population)", names[0])
	}
}

func TestByContinent(t *testing.T) {
	ns := byContinent(testNations)
	if len(ns) != 3 {
		t.Fatalf("got %d continents, want 3", len(ns))
	}
	// Sorted by continent name.
	for i, want := range []string{"Africa", "Asia", "Europe"} {
		if ns[i].Name != want || ns[i].Continent != want {
			t.Errorf("continent %d = %q, want %q", i, ns[i].Name, want)
		}
	}

	asia := ns[1]
	if want := int64(1376000000 + 1311000000); asia.Population != want {
		t.Errorf("Asia population = %d, want %d", asia.Population, want)
	}
	// Weighted mean stays within the input range, pulled toward
	// the more populous country.
	if !(6427 < asia.Income && asia.Income < 16000) {
		t.Errorf("Asia income = %v, want within (6427, 16000)", asia.Income)
	}
	mid := (6427.0 + 16000) / 2
	if asia.Income <= mid {
		t.Errorf("Asia income = %v, want above midpoint %v (China outweighs India)", asia.Income, mid)
	}
}

func TestFormatters(t *testing.T) {
	for _, test := range []struct {
		got, want string
	}{
		{money(1763), "$1,763"},
		{money(64304), "$64,304"},
		{money(500), "$500"},
		{money(1234567), "$1,234,567"},
		{people(1376000000), "1.4B"},
		{people(14453000), "14.5M"},
		{people(5305000), "5.3M"},
		{people(1000), "1k"},
		{people(950), "950"},
	} {
		if test.got != test.want {
			t.Errorf("got %q, want %q", test.got, test.want)
		}
	}
}
