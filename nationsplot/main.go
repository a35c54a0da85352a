// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nationsplot renders a wealth-and-health bubble chart of
// country statistics.
//
// nationsplot reads one or more data sets in CSV or JSON form (see
// package nations for the formats) and renders an SVG scatter plot:
// income on a log x axis, life expectancy on a linear y axis, one
// bubble per country with area proportional to population and color
// by continent. Hovering over the plot shows the nearest country's
// statistics; the hover behavior is embedded in the SVG itself.
//
// By default nationsplot renders once and writes the SVG to standard
// output. With -http it serves the chart over HTTP instead,
// re-rendering on every request with the request's parameters.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/aclements/go-gg/table"

	"github.com/cFabianR/go-nations/bubble"
	"github.com/cFabianR/go-nations/nations"
)

func main() {
	log.SetPrefix("nationsplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable      = flag.Bool("table", false, "output a table instead of a plot")
		flagHTTP       = flag.String("http", "", "serve the chart on `address` instead of rendering once")
		flagTitle      = flag.String("title", "", "chart `title`")
		flagWidth      = flag.Int("w", 1000, "SVG width in `pixels`")
		flagHeight     = flag.Int("h", 700, "SVG height in `pixels`")
		flagContinent  = flag.String("continent", "", "only plot countries on `continent`")
		flagByCont     = flag.Bool("by-continent", false, "aggregate to one bubble per continent")
		flagTrend      = flag.Bool("trend", false, "add a LOESS trend line")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Parse data sets.
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var ns []*nations.Nation
	for _, path := range paths {
		func() {
			f := os.Stdin
			if path != "-" {
				var err error
				f, err = os.Open(path)
				if err != nil {
					log.Fatal(err)
				}
				defer f.Close()
			}

			parsed, err := nations.Parse(f)
			if err != nil {
				log.Fatalf("%s: %s", path, err)
			}
			ns = append(ns, parsed...)
		}()
	}

	if *flagContinent != "" {
		ns = filter(ns, *flagContinent)
		if len(ns) == 0 {
			log.Fatalf("no countries on continent %q", *flagContinent)
		}
	}

	// Serve.
	if *flagHTTP != "" {
		serve(*flagHTTP, ns, *flagTitle)
		return
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// Output table.
	if *flagTable {
		table.Fprint(f, bubble.Table(ns))
		return
	}

	// Plot.
	p, err := bubble.New(ns, bubble.Config{
		Title:       *flagTitle,
		ByContinent: *flagByCont,
		Trend:       *flagTrend,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Render plot.
	if err := p.WriteSVG(f, *flagWidth, *flagHeight); err != nil {
		log.Fatal(err)
	}
}

// filter returns the nations of ns on the given continent.
func filter(ns []*nations.Nation, continent string) []*nations.Nation {
	var out []*nations.Nation
	for _, n := range ns {
		if n.Continent == continent {
			out = append(out, n)
		}
	}
	return out
}
