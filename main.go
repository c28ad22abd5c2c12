package main

import (
	"os"

	"github.com/dayoung/studypal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
