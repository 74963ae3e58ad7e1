package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/bobby-didcoding/recycleye/pkg/runcfg"
	"github.com/bobby-didcoding/recycleye/pkg/schema"
	"github.com/bobby-didcoding/recycleye/pkg/sequence"
)

var version = "dev"

func main() {
	if len(os.Args) == 2 && (os.Args[1] == "--version" || os.Args[1] == "version") {
		fmt.Println(version)
		return
	}

	seed := flag.Int64("seed", 0, "deterministic seed; 0 derives one from the clock")
	runConfig := flag.String("run-config", "", "optional YAML run-settings file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: seqgen [flags] <config.json>")
		os.Exit(2)
	}

	settings := runcfg.Default()
	if *runConfig != "" {
		var err error
		settings, err = runcfg.Load(*runConfig)
		if err != nil {
			fail(err)
		}
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	cfg, err := sequence.LoadConfig(flag.Arg(0))
	if err != nil {
		fail(err)
	}
	if settings.ValidateSchema {
		if err := schema.ValidateConfig(cfg); err != nil {
			fail(err)
		}
	}

	rng := rand.New(rand.NewSource(settings.Seed))
	records, err := sequence.Generate(cfg, rng, time.Now())
	if err != nil {
		fail(err)
	}
	if err := sequence.EmitJSONL(os.Stdout, records); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "seqgen: %v\n", err)
	os.Exit(1)
}
