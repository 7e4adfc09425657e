// Command solve reads a JSON instance, runs the classical or the
// load-dependent postman engine on it, and writes the instance back with
// the solution record (and the solving machine's fingerprint) attached.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/katalvlaran/lvlroute/cpplc"
	"github.com/katalvlaran/lvlroute/instance"
	"github.com/katalvlaran/lvlroute/postman"
)

var (
	inputF   = flag.String("input", "input.json", "Path to the input instance")
	outputF  = flag.String("output", "", "Path to the output file. By default the input file is overwritten with the solution added")
	budget   = flag.Duration("budget", 0, "Wall-clock budget for the exact pipeline (0 = unlimited)")
	lc       = flag.Bool("lc", false, "Solve the load-dependent variant instead of the classical one")
	capacity = flag.Float64("capacity", 0, "Vehicle capacity for -lc (0 = use the instance's capacity field)")
	alpha    = flag.Float64("alpha", cpplc.DefaultAlpha, "Load sensitivity for the linear cost model")
	costName = flag.String("cost", "linear", "Load cost model: linear, quadratic, piecewise or fuel")
	strat    = flag.String("strat", "recost", "LC construction strategy: recost or greedy")
	depot    = flag.Int("depot", -1, "Depot vertex for -lc (-1 = use the instance's depot field)")
)

func main() {
	flag.Parse()

	in, err := instance.Read(*inputF)
	if err != nil {
		log.Fatalf("At %s: %s", *inputF, err)
	}
	g, err := in.Graph()
	if err != nil {
		log.Fatalf("At %s: %s", *inputF, err)
	}

	timeBudget := postman.NoTimeBudget
	if *budget > 0 {
		timeBudget = *budget
	}

	var res postman.SolveResult
	if *lc {
		q := *capacity
		if q == 0 {
			q = in.Capacity
		}
		d := *depot
		if d < 0 {
			d = in.Depot
		}
		res, err = cpplc.Solve(g, q,
			cpplc.WithDepot(d),
			cpplc.WithCostFunc(costFunc(*costName, *alpha, q)),
			cpplc.WithStrategy(strategy(*strat)),
			cpplc.WithTimeBudget(timeBudget),
		)
		if err != nil {
			log.Fatalf("At %s: %s", *inputF, err)
		}
	} else {
		res = postman.Solve(g, postman.WithTimeBudget(timeBudget))
	}

	in.Solution = instance.NewSolution(res, sysInfo())

	out := *outputF
	if out == "" {
		out = *inputF
	}
	if err = instance.Write(out, in); err != nil {
		log.Fatalf("At %s: %s", out, err)
	}
	log.Printf("%s: cost=%g exact=%v elapsed=%s -> %s", in.Name, res.Cost, res.Exact, res.Elapsed, out)
}

func costFunc(name string, alpha, capacity float64) cpplc.CostFunc {
	switch name {
	case "quadratic":
		return cpplc.Quadratic(alpha, capacity)
	case "piecewise":
		return cpplc.Piecewise(capacity)
	case "fuel":
		return cpplc.Fuel(50, alpha)
	default:
		return cpplc.Linear(alpha, capacity)
	}
}

func strategy(name string) cpplc.Strategy {
	if name == "greedy" {
		return cpplc.GreedyInsertion
	}

	return cpplc.RecostClassicalTour
}

func sysInfo() instance.SysInfo {
	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()

	sys := instance.SysInfo{}
	if hostStat != nil {
		sys.Platform = hostStat.Platform
	}
	if len(cpuStat) > 0 {
		sys.CPU = cpuStat[0].ModelName
	}
	if vmStat != nil {
		sys.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return sys
}
