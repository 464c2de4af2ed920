package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/report"
	"cpu-scheduler-simulator/internal/schedulers"
	"cpu-scheduler-simulator/internal/workload"
)

var titles = map[schedulers.Policy]string{
	schedulers.PolicyFirstComeFirstServe:          "First-come, first-serve",
	schedulers.PolicyShortestJobFirst:             "Shortest-job-first",
	schedulers.PolicyShortestJobFirstArrivalAware: "Shortest-job-first (arrival aware)",
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("schedsim", flag.ContinueOnError)
	workloadPath := flags.String("workload", "", "workload file (.yaml, .yml or .csv)")
	policyName := flags.String("policy", "", "fcfs, sjf, sjf-arrival or all (defaults to the configured policy)")
	configPath := flags.String("config", "", "config file (defaults to ./config.yaml when present)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *workloadPath == "" {
		return fmt.Errorf("missing -workload")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	policies := []schedulers.Policy{cfg.DefaultPolicy}
	switch *policyName {
	case "":
	case "all":
		policies = schedulers.Policies
	default:
		policy, err := schedulers.ParsePolicy(*policyName)
		if err != nil {
			return err
		}
		policies = []schedulers.Policy{policy}
	}

	processes, err := workload.Load(*workloadPath)
	if err != nil {
		return err
	}
	simulator := schedulers.NewSimulator(cfg.SimulatorOptions())
	for _, p := range processes {
		if _, _, err := simulator.Add(p.Name, p.BurstTime, p.ArrivalTime); err != nil {
			return err
		}
	}

	for _, policy := range policies {
		result, err := simulator.Run(policy)
		if err != nil {
			return err
		}
		report.Render(w, titles[policy], result)
	}
	return nil
}
