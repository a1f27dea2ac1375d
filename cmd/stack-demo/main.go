package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/FleekHQ/space-stack/app"
	"github.com/FleekHQ/space-stack/config"
	"github.com/FleekHQ/space-stack/core/env"
	"github.com/FleekHQ/space-stack/log"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
	debugMode  = flag.Bool("debug", false, "serve pprof on localhost:6060 while running")
	jsonConfig = flag.Bool("json", false, "read settings from stack.json in the working folder")
	initConfig = flag.Bool("init", false, "write a default stack.json to the working folder and exit")
	workers    = flag.Int("workers", 0, "number of goroutines sharing the stack")
	ops        = flag.Int("ops", 0, "values pushed by each goroutine")
	mode       = flag.String("mode", "", "workload mode: mixed or push-only")
	backend    = flag.String("backend", "", "stack backend: slice or collections")
	trace      = flag.Bool("trace", false, "report spans to a local jaeger agent")
)

func main() {
	// this defer code here ensures all profile defer call work properly
	returnCode := 0
	defer func() { os.Exit(returnCode) }()

	// flags
	flag.Parse()

	// env
	env := env.New()
	log.New(env.LogLevel())

	if *initConfig {
		if err := config.CreateConfigJson(env.WorkingFolder()); err != nil {
			log.Error("Could not write default config", err)
			returnCode = 1
		}
		return
	}

	if *debugMode {
		log.Debug("Running with profiler. Visit http://localhost:6060/debug/pprof")
		go func() {
			fmt.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	if *cpuprofile != "" {
		cleanupCpuProfile := runCpuProfiler(*cpuprofile)
		defer cleanupCpuProfile()
	}

	// load configs
	var cfg config.Config
	if *jsonConfig {
		cfg = config.NewJson(env)
	} else {
		cfg = config.NewMap(&config.Flags{
			Workers:      *workers,
			Ops:          *ops,
			Mode:         *mode,
			Backend:      *backend,
			TraceEnabled: *trace,
		})
	}

	// setup context
	ctx := context.Background()

	stackApp := app.New(cfg, env)
	// this blocks and returns when the workload is done or on interrupt
	err := stackApp.Start(ctx)

	if *memprofile != "" {
		cleanupMemProfile := runMemProfiler(*memprofile)
		defer cleanupMemProfile()
	}

	if err != nil {
		log.Error("Workload failed", err)
		returnCode = 1
		return
	}

	if report := stackApp.Report(); report != nil {
		fmt.Println(report.String())
	}
}

func runCpuProfiler(outputFilePath string) func() {
	f, err := os.Create(outputFilePath)
	if err != nil {
		log.Error("Could not create CPU profile", err)
		return func() {}
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		log.Error("Could not start CPU profile", err)
	}

	// return cleanup function
	return func() {
		pprof.StopCPUProfile()
		if f != nil {
			_ = f.Close() // error is ignored
		}
	}
}

func runMemProfiler(outputFilePath string) func() {
	f, err := os.Create(outputFilePath)
	if err != nil {
		log.Error("could not create memory profile", err)
		return func() {}
	}

	runtime.GC() // get up-to-date statistics
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Error("could not write memory profile", err)
	}

	// return cleanup function
	return func() {
		if f != nil {
			_ = f.Close()
		}
	}
}
