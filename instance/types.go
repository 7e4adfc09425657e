// Package instance defines the JSON interchange format for postman
// instances and solutions: an edge-list record with optional per-edge
// demands, plus a solution record carrying the solver outcome and the
// machine it was produced on.
package instance

import (
	"errors"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/postman"
)

// Sentinel errors for record validation.
var (
	// ErrBadDimension indicates a non-positive vertex count.
	ErrBadDimension = errors.New("instance: dimension must be ≥ 1")

	// ErrBadEndpoint indicates an edge endpoint outside [0, dimension).
	ErrBadEndpoint = errors.New("instance: edge endpoint out of range")
)

// Edge is one undirected edge of the instance. Demand is a pointer on
// purpose: absent means "no pickup here", which is different from an
// explicit zero in the file.
type Edge struct {
	U      int      `json:"u"`
	V      int      `json:"v"`
	Weight float64  `json:"weight"`
	Demand *float64 `json:"demand,omitempty"`
}

// Instance is the on-disk problem record.
type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment,omitempty"`

	Dimension int     `json:"dimension"`
	Edges     []Edge  `json:"edges"`
	Capacity  float64 `json:"capacity,omitempty"`
	Depot     int     `json:"depot,omitempty"`

	Solution *Solution `json:"solution,omitempty"`
}

// Solution is the on-disk result record appended to a solved instance.
type Solution struct {
	Cost            float64  `json:"cost"`
	Tour            [][2]int `json:"tour,omitempty"`
	Exact           bool     `json:"exact"`
	Reason          string   `json:"reason,omitempty"`
	DepotTrips      int      `json:"depot_trips,omitempty"`
	PercentIncrease float64  `json:"percent_increase,omitempty"`
	CapacityWarning bool     `json:"capacity_warning,omitempty"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment,omitempty"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// Graph materializes the record into a solver graph, preserving the
// typed-absence of demands.
//
// Errors: ErrBadDimension, ErrBadEndpoint, plus core's edge validation.
func (in *Instance) Graph() (*core.Graph, error) {
	if in.Dimension < 1 {
		return nil, ErrBadDimension
	}
	g, err := core.NewGraph(in.Dimension)
	if err != nil {
		return nil, err
	}
	for _, e := range in.Edges {
		if e.U < 0 || e.U >= in.Dimension || e.V < 0 || e.V >= in.Dimension {
			return nil, ErrBadEndpoint
		}
		var opts []core.EdgeOption
		if e.Demand != nil {
			opts = append(opts, core.WithDemand(*e.Demand))
		}
		if _, err = g.AddEdge(e.U, e.V, e.Weight, opts...); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// NewSolution converts a solver result into the on-disk record. The
// reason string is empty for exact results so omitempty keeps clean files.
func NewSolution(res postman.SolveResult, sys SysInfo) *Solution {
	reason := ""
	if res.Reason != postman.ReasonNone {
		reason = res.Reason.String()
	}

	return &Solution{
		Cost:            res.Cost,
		Tour:            res.Tour,
		Exact:           res.Exact,
		Reason:          reason,
		DepotTrips:      res.Diagnostics.DepotTrips,
		PercentIncrease: res.Diagnostics.PercentIncrease,
		CapacityWarning: res.Diagnostics.CapacityWarning,
		Time:            res.Elapsed.String(),
		System:          sys,
	}
}
