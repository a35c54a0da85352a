// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nations

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []*Nation
	}{
		// Test basic rows.
		{`name,continent,income,life expectancy,population
Chad,Africa,1763,54.3,14453000
Norway,Europe,64304,82.1,5305000`,
			[]*Nation{
				{"Chad", "Africa", 1763, 54.3, 14453000},
				{"Norway", "Europe", 64304, 82.1, 5305000},
			},
		},

		// Test header canonicalization and extra columns.
		{`Name,Continent,year,Income,Life_Expectancy,Population
China,Asia,2010,16000,76.5,1376000000`,
			[]*Nation{
				{"China", "Asia", 16000, 76.5, 1376000000},
			},
		},

		// Test camelCase header.
		{`name,continent,income,lifeExpectancy,population
Peru,America,11903,74.8,31377000`,
			[]*Nation{
				{"Peru", "America", 11903, 74.8, 31377000},
			},
		},

		// Test header only.
		{`name,continent,income,life expectancy,population`,
			[]*Nation{},
		},

		// Test empty input.
		{"", []*Nation{}},
	} {
		got, err := ParseCSV(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("unexpected error %v for %q", err, test.input)
		} else if !reflect.DeepEqual(got, test.want) {
			t.Errorf("parsing %q: want %v, got %v", test.input, test.want, got)
		}
	}
}

func TestParseCSVErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		// Missing required column.
		{`name,continent,income,population
Chad,Africa,1763,14453000`,
			"missing column",
		},

		// Malformed number.
		{`name,continent,income,life expectancy,population
Chad,Africa,lots,54.3,14453000`,
			"bad income",
		},

		// Non-positive income (breaks the log scale).
		{`name,continent,income,life expectancy,population
Chad,Africa,0,54.3,14453000`,
			"income 0 not positive",
		},

		// Missing continent.
		{`name,continent,income,life expectancy,population
Chad,,1763,54.3,14453000`,
			"missing continent",
		},
	} {
		_, err := ParseCSV(strings.NewReader(test.input))
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("parsing %q: want error containing %q, got %v", test.input, test.want, err)
		}
	}
}

func TestParseJSON(t *testing.T) {
	want := []*Nation{
		{"Chad", "Africa", 1763, 54.3, 14453000},
	}

	for _, input := range []string{
		// Bare array.
		`[{"name":"Chad","continent":"Africa","income":1763,"lifeExpectancy":54.3,"population":14453000}]`,
		// Wrapped in an object.
		`{"nations":[{"name":"Chad","continent":"Africa","income":1763,"lifeExpectancy":54.3,"population":14453000}]}`,
		`{"countries":[{"name":"Chad","continent":"Africa","income":1763,"lifeExpectancy":54.3,"population":14453000}]}`,
		// "region" as a continent synonym.
		`[{"name":"Chad","region":"Africa","income":1763,"lifeExpectancy":54.3,"population":14453000}]`,
	} {
		got, err := ParseJSON(strings.NewReader(input))
		if err != nil {
			t.Errorf("unexpected error %v for %q", err, input)
		} else if !reflect.DeepEqual(got, want) {
			t.Errorf("parsing %q: want %v, got %v", input, want, got)
		}
	}

	// Validation applies to JSON, too.
	_, err := ParseJSON(strings.NewReader(`[{"name":"Chad","continent":"Africa","income":1763,"population":14453000}]`))
	if err == nil || !strings.Contains(err.Error(), "life expectancy") {
		t.Errorf("want life expectancy error, got %v", err)
	}
}

func TestParseDetect(t *testing.T) {
	// Leading whitespace must not confuse format detection.
	ns, err := Parse(strings.NewReader("\n  [{\"name\":\"Chad\",\"continent\":\"Africa\",\"income\":1763,\"lifeExpectancy\":54.3,\"population\":14453000}]"))
	if err != nil || len(ns) != 1 {
		t.Errorf("JSON detection failed: %v, %v", ns, err)
	}

	ns, err = Parse(strings.NewReader("name,continent,income,life expectancy,population\nChad,Africa,1763,54.3,14453000\n"))
	if err != nil || len(ns) != 1 {
		t.Errorf("CSV detection failed: %v, %v", ns, err)
	}

	ns, err = Parse(strings.NewReader("  \n\t"))
	if err != nil || len(ns) != 0 {
		t.Errorf("empty input: want no nations and nil error, got %v, %v", ns, err)
	}
}

func TestContinents(t *testing.T) {
	ns := []*Nation{
		{"Norway", "Europe", 64304, 82.1, 5305000},
		{"Chad", "Africa", 1763, 54.3, 14453000},
		{"France", "Europe", 41005, 82.7, 64457000},
	}
	want := []string{"Africa", "Europe"}
	if got := Continents(ns); !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}
