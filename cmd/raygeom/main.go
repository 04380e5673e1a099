package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/raygeom/internal/probe"
)

func main() {
	probe.Debug = os.Getenv("DEBUG") != ""
	probe.AlwaysBVH = os.Getenv("ALWAYS_BVH") != ""
	probe.NeverBVH = os.Getenv("NEVER_BVH") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "queries/example.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := probe.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
