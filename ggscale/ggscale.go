// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggscale provides additional scales for go-gg plots.
//
// go-gg ships linear, log, ordinal, time, and identity scales. This
// package adds a square-root scale, which satisfies
// gg.ContinuousScaler and can be installed with Plot.SetScale. It is
// intended for the "size" aesthetic, where it makes mark area (rather
// than radius) proportional to the data value.
package ggscale

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
)

var float64Type = reflect.TypeOf(float64(0))

// NewSqrtScaler returns a continuous scale that maps its input domain
// by square root. The domain's lower bound defaults to 0 rather than
// the smallest trained value, so that when the scale is used for the
// "size" aesthetic, mark area is proportional to the data value.
// Negative and non-finite values map to a NaN position, which point
// marks drop.
func NewSqrtScaler() gg.ContinuousScaler {
	return &sqrtScale{
		min:     math.NaN(),
		max:     math.NaN(),
		dataMax: math.NaN(),
	}
}

type sqrtScale struct {
	r gg.Ranger
	f interface{}

	domainType reflect.Type
	min, max   float64
	dataMax    float64
}

func (s *sqrtScale) String() string {
	lo, hi := s.get()
	return fmt.Sprintf("sqrt [%g,%g] => %s", lo, hi, s.r)
}

func (s *sqrtScale) ExpandDomain(vs table.Slice) {
	if s.domainType == nil {
		s.domainType = reflect.TypeOf(vs).Elem()
	}

	var data []float64
	slice.Convert(&data, vs)
	max := s.dataMax
	for _, v := range data {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v > max || math.IsNaN(max) {
			max = v
		}
	}
	s.dataMax = max
}

func (s *sqrtScale) SetMin(v interface{}) gg.ContinuousScaler {
	if v == nil {
		s.min = math.NaN()
		return s
	}
	s.min = reflect.ValueOf(v).Convert(float64Type).Float()
	return s
}

func (s *sqrtScale) SetMax(v interface{}) gg.ContinuousScaler {
	if v == nil {
		s.max = math.NaN()
		return s
	}
	s.max = reflect.ValueOf(v).Convert(float64Type).Float()
	return s
}

func (s *sqrtScale) Include(v interface{}) gg.ContinuousScaler {
	if v == nil {
		return s
	}
	vfloat := reflect.ValueOf(v).Convert(float64Type).Float()
	if vfloat < 0 || math.IsNaN(vfloat) || math.IsInf(vfloat, 0) {
		return s
	}
	if vfloat > s.dataMax || math.IsNaN(s.dataMax) {
		s.dataMax = vfloat
	}
	return s
}

// get returns the effective domain bounds. Explicit bounds take
// precedence over the trained data bounds. An explicit lower bound
// below 0 is clamped to 0 rather than discarding the upper bound,
// since no value below 0 is in the domain of a square root.
func (s *sqrtScale) get() (lo, hi float64) {
	lo, hi = s.min, s.max
	if math.IsNaN(lo) {
		lo = 0
	}
	if math.IsNaN(hi) {
		hi = s.dataMax
	}
	if math.IsNaN(hi) {
		hi = 1
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return
}

func (s *sqrtScale) mapValue(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN()
	}
	lo, hi := s.get()
	if lo == hi {
		return 0.5
	}
	x := (math.Sqrt(v) - math.Sqrt(lo)) / (math.Sqrt(hi) - math.Sqrt(lo))
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return x
}

func (s *sqrtScale) Ranger(r gg.Ranger) gg.Ranger {
	old := s.r
	if r != nil {
		s.r = r
	}
	return old
}

func (s *sqrtScale) RangeType() reflect.Type {
	return s.r.RangeType()
}

func (s *sqrtScale) Map(x interface{}) interface{} {
	var scaled float64
	switch x := x.(type) {
	case float64:
		scaled = s.mapValue(x)
	case gg.Unscaled:
		scaled = float64(x)
	default:
		v := reflect.ValueOf(x).Convert(float64Type).Float()
		scaled = s.mapValue(v)
	}
	return mapRange(s.r, scaled)
}

func (s *sqrtScale) Ticks(max int, pred func(major, minor table.Slice, labels []string) bool) (major, minor table.Slice, labels []string) {
	if s.domainType == nil {
		// No trained values, so we can't return slices of the
		// domain type.
		return nil, nil, nil
	}

	// Ticks are placed at nice values of the input domain, not of
	// its square root, so readers can interpolate between labels.
	lo, hi := s.get()
	if lo == hi {
		// A single-valued domain gets a single tick.
		one := s.toDomain([]float64{lo})
		labels = mkLabels([]float64{lo}, s.f)
		if pred == nil || pred(one, one, labels) {
			return one, one, labels
		}
		return nil, nil, nil
	}

	o := scale.TickOptions{Max: max}
	// If the domain type is integral, don't let the tick level go
	// below 0: fractional ticks would collapse when converted
	// back to the domain type.
	switch s.domainType.Kind() {
	case reflect.Int, reflect.Uint, reflect.Uintptr,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		o.MinLevel, o.MaxLevel = 0, 1000
	default:
		o.MinLevel, o.MaxLevel = -1000, 1000
	}

	ls := &scale.Linear{Min: lo, Max: hi}
	level, ok := o.FindLevel(ls, 0)
	if !ok {
		return nil, nil, nil
	}

	// Adjust level to satisfy pred.
	for ; level <= o.MaxLevel; level++ {
		majorx := ls.TicksAtLevel(level).([]float64)
		minorx := ls.TicksAtLevel(level - 1).([]float64)
		labels = mkLabels(majorx, s.f)

		major, minor = s.toDomain(majorx), s.toDomain(minorx)
		if pred == nil || pred(major, minor, labels) {
			return major, minor, labels
		}
	}
	gg.Warning.Printf("%s: unable to compute satisfactory ticks, axis will be empty", s)
	return nil, nil, nil
}

// toDomain converts tick positions back to the scale's domain type.
func (s *sqrtScale) toDomain(ticks []float64) table.Slice {
	out := reflect.New(reflect.SliceOf(s.domainType))
	slice.Convert(out.Interface(), ticks)
	return out.Elem().Interface()
}

func (s *sqrtScale) SetFormatter(f interface{}) {
	s.f = f
}

func (s *sqrtScale) CloneScaler() gg.Scaler {
	s2 := *s
	return &s2
}

// mapRange applies a Ranger to a scaled position in [0, 1], the same
// way gg's built-in continuous scales do.
func mapRange(r gg.Ranger, scaled float64) interface{} {
	switch r := r.(type) {
	case gg.ContinuousRanger:
		return r.Map(scaled)

	case gg.DiscreteRanger:
		_, levels := r.Levels()
		level := int(scaled * float64(levels))
		if level < 0 {
			level = 0
		} else if level >= levels {
			level = levels - 1
		}
		return r.MapLevel(level, levels)

	default:
		panic("Ranger must be a ContinuousRanger or DiscreteRanger")
	}
}

func mkLabels(major []float64, f interface{}) []string {
	labels := make([]string, len(major))
	if f != nil {
		if ff, ok := f.(func(float64) string); ok {
			for i, x := range major {
				labels[i] = ff(x)
			}
			return labels
		}
		fv := reflect.ValueOf(f)
		at := fv.Type().In(0)
		var avs [1]reflect.Value
		for i, x := range major {
			avs[0] = reflect.ValueOf(x).Convert(at)
			rvs := fv.Call(avs[:])
			labels[i] = rvs[0].Interface().(string)
		}
		return labels
	}
	for i, x := range major {
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			labels[i] = strconv.FormatFloat(x, 'f', -1, 64)
		} else {
			labels[i] = fmt.Sprintf("%.6g", x)
		}
	}
	return labels
}
