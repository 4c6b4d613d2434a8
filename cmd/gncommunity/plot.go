// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gonum-community/gncommunity/graph/community"
)

// plotTrace renders the betweenness value of each cut edge against the
// iteration it was cut on, following the plot.New/p.Add/p.Save idiom used by
// dsp/window/cmd/leakage's spectral-leakage plot.
func plotTrace(steps []community.Step, path string) error {
	p := plot.New()
	p.Title.Text = "Girvan–Newman cut trace"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "betweenness of cut edge"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(steps))
	for i, step := range steps {
		pts[i] = plotter.XY{X: float64(step.Iteration), Y: step.Betweenness}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	p.Add(line, scatter)

	return p.Save(16*vg.Centimeter, 8*vg.Centimeter, path)
}
