// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nations

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a data set from r, auto-detecting the format. Input
// that starts with "[" or "{" is treated as JSON; anything else as
// CSV.
func Parse(r io.Reader) ([]*Nation, error) {
	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return []*Nation{}, nil
		} else if err != nil {
			return nil, err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		br.UnreadByte()
		if c == '[' || c == '{' {
			return ParseJSON(br)
		}
		return ParseCSV(br)
	}
}

// ParseCSV reads a data set in CSV form. The first row must be a
// header naming the columns; the required columns are "name",
// "continent", "income", "life expectancy", and "population". Header
// matching is case-insensitive and treats "_" and "-" as spaces
// ("life_expectancy" and "lifeExpectancy" both work). Extra columns
// are ignored.
func ParseCSV(r io.Reader) ([]*Nation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return []*Nation{}, nil
	} else if err != nil {
		return nil, err
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[canonCol(name)] = i
	}
	for _, req := range []string{"name", "continent", "income", "life expectancy", "population"} {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("missing column %q", req)
		}
	}

	ns := []*Nation{}
	for rec := 1; ; rec++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		n := &Nation{
			Name:      row[cols["name"]],
			Continent: row[cols["continent"]],
		}
		if n.Income, err = strconv.ParseFloat(row[cols["income"]], 64); err != nil {
			return nil, fmt.Errorf("record %d: bad income %q", rec, row[cols["income"]])
		}
		if n.LifeExpectancy, err = strconv.ParseFloat(row[cols["life expectancy"]], 64); err != nil {
			return nil, fmt.Errorf("record %d: bad life expectancy %q", rec, row[cols["life expectancy"]])
		}
		if n.Population, err = strconv.ParseInt(row[cols["population"]], 10, 64); err != nil {
			return nil, fmt.Errorf("record %d: bad population %q", rec, row[cols["population"]])
		}
		if err := n.check(); err != nil {
			return nil, fmt.Errorf("record %d: %s", rec, err)
		}
		ns = append(ns, n)
	}
	return ns, nil
}

// canonCol canonicalizes a CSV column name: lower case, "_" and "-"
// folded to spaces, and camelCase split at case changes.
func canonCol(name string) string {
	var b strings.Builder
	prevLower := false
	for _, c := range strings.TrimSpace(name) {
		switch {
		case c == '_' || c == '-':
			c = ' '
		case 'A' <= c && c <= 'Z':
			if prevLower {
				b.WriteByte(' ')
			}
			c += 'a' - 'A'
		}
		prevLower = 'a' <= c && c <= 'z'
		b.WriteRune(c)
	}
	return b.String()
}

type jsonNation struct {
	Name           string   `json:"name"`
	Continent      string   `json:"continent"`
	Region         string   `json:"region"`
	Income         float64  `json:"income"`
	LifeExpectancy *float64 `json:"lifeExpectancy"`
	Population     int64    `json:"population"`
}

// ParseJSON reads a data set in JSON form: an array of objects with
// keys "name", "continent" (or "region"), "income", "lifeExpectancy",
// and "population", or an object whose "nations" or "countries" key
// holds such an array.
func ParseJSON(r io.Reader) ([]*Nation, error) {
	var raw json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	var recs []jsonNation
	if err := json.Unmarshal(raw, &recs); err != nil {
		// Maybe it's wrapped in an object.
		var obj struct {
			Nations   []jsonNation `json:"nations"`
			Countries []jsonNation `json:"countries"`
		}
		if err2 := json.Unmarshal(raw, &obj); err2 != nil {
			return nil, err
		}
		recs = obj.Nations
		if recs == nil {
			recs = obj.Countries
		}
		if recs == nil {
			return nil, fmt.Errorf("no \"nations\" or \"countries\" array")
		}
	}

	ns := []*Nation{}
	for i, rec := range recs {
		n := &Nation{
			Name:       rec.Name,
			Continent:  rec.Continent,
			Income:     rec.Income,
			Population: rec.Population,
		}
		if n.Continent == "" {
			n.Continent = rec.Region
		}
		if rec.LifeExpectancy != nil {
			n.LifeExpectancy = *rec.LifeExpectancy
		}
		if err := n.check(); err != nil {
			return nil, fmt.Errorf("record %d: %s", i+1, err)
		}
		ns = append(ns, n)
	}
	return ns, nil
}
