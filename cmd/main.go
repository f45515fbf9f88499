package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(execute())
}

func execute() int {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	code := 0
	root := newRootCommand(&code)
	if err := root.Execute(); err != nil {
		return 1
	}
	return code
}

func newRootCommand(code *int) *cobra.Command {
	root := &cobra.Command{
		Use:          "alo-bubbles",
		Short:        "Ephemeral bubble notification scheduler for the ALO festival guide",
		Version:      Version,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCommand(code))
	root.AddCommand(newSimulateCommand())

	return root
}
