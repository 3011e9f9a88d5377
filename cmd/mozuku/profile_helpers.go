package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mozuku/internal/prof"
)

// setupProfiling inspects the profiling flags and enables the matching
// profilers. The returned cleanup function is safe to call more than
// once.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}

	stopCPU := func() {}
	writeHeap := func() {}

	if cpuProfile != "" {
		if err := prof.StartCPU(cpuProfile); err != nil {
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		stopCPU = prof.StopCPU
	}
	if memProfile != "" {
		writeHeap = func() {
			if err := prof.WriteHeap(memProfile); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write heap profile: %v\n", err)
			}
		}
	}

	cleaned := false
	cleanup := func() {
		if cleaned {
			return
		}
		cleaned = true
		stopCPU()
		writeHeap()
	}

	return cleanup, nil
}
