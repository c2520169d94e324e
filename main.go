package main

import (
	"os"

	"github.com/abhisek/pwaquiz/cmd"
	"github.com/abhisek/pwaquiz/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Flush()
	if err != nil {
		os.Exit(1)
	}
}
