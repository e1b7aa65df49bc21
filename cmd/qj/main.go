package main

import (
	"os"

	"github.com/jacoelho/qj/internal/config"
	"github.com/jacoelho/qj/internal/execute"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	r, exitResult := execute.New(cfg)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	return r.Run()
}
