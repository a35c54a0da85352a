// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/cFabianR/go-nations/bubble"
	"github.com/cFabianR/go-nations/nations"
)

// server serves a loaded data set over HTTP, re-rendering the chart
// on every request. This is the live counterpart of the one-shot SVG
// output: edit the URL parameters and reload.
type server struct {
	ns    []*nations.Nation
	title string
}

func serve(addr string, ns []*nations.Nation, title string) {
	s := &server{ns, title}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.index)
	mux.HandleFunc("/chart.svg", s.chart)
	log.Printf("serving %d countries on %s", len(ns), addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

// params extracts chart parameters from a request. It returns an
// error for malformed or out-of-range values.
func (s *server) params(r *http.Request) (cfg bubble.Config, w, h int, continent string, err error) {
	q := r.URL.Query()
	cfg.Title = s.title
	if t := q.Get("title"); t != "" {
		cfg.Title = t
	}
	cfg.ByContinent = q.Get("by") == "continent"
	cfg.Trend = q.Get("trend") == "1"
	continent = q.Get("continent")

	dim := func(name string, def int) (int, error) {
		v := q.Get(name)
		if v == "" {
			return def, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 100 || n > 4000 {
			return 0, fmt.Errorf("bad %s %q: want 100..4000", name, v)
		}
		return n, nil
	}
	if w, err = dim("w", 1000); err != nil {
		return
	}
	h, err = dim("h", 700)
	return
}

func (s *server) chart(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)

	cfg, width, height, continent, err := s.params(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ns := s.ns
	if continent != "" {
		ns = filter(ns, continent)
	}

	p, err := bubble.New(ns, cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Render to a buffer so a failure doesn't leave a torn
	// response.
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, width, height); err != nil {
		log.Printf("render: %s", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

// indexTmpl embeds the chart with <object> rather than <img> so the
// SVG's own hover script keeps running.
var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>nationsplot</title></head>
<body>
<form action="/" method="get">
continent: <select name="continent">
<option value="">all</option>
{{range .Continents}}<option{{if eq . $.Continent}} selected{{end}}>{{.}}</option>
{{end}}</select>
<label><input type="checkbox" name="by" value="continent"{{if .By}} checked{{end}}> by continent</label>
<label><input type="checkbox" name="trend" value="1"{{if .Trend}} checked{{end}}> trend</label>
<input type="submit" value="redraw">
</form>
<object type="image/svg+xml" data="{{.ChartURL}}"></object>
</body>
</html>
`))

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	log.Printf("%s %s", r.Method, r.URL)

	q := r.URL.Query()
	// Build the chart URL here rather than in the template: in a
	// URL query context html/template would escape the = and &
	// of the already-encoded query.
	chartURL := "/chart.svg"
	if enc := q.Encode(); enc != "" {
		chartURL += "?" + enc
	}
	err := indexTmpl.Execute(w, struct {
		Continents []string
		Continent  string
		By, Trend  bool
		ChartURL   template.URL
	}{
		Continents: nations.Continents(s.ns),
		Continent:  q.Get("continent"),
		By:         q.Get("by") == "continent",
		Trend:      q.Get("trend") == "1",
		ChartURL:   template.URL(chartURL),
	})
	if err != nil {
		log.Printf("template: %s", err)
	}
}
