package main

import (
	"os"

	"github.com/vietdv277/vpcgap/cmd"
	"github.com/vietdv277/vpcgap/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		code := cmd.ExitCode(err)
		if logging.Verbose {
			logging.Error("command failed", "error", err, "exit_code", code)
		}
		logging.UserError("%v", err)
		os.Exit(code)
	}
}
