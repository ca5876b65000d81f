// Command urlreport prints, for every UTC day in an access log, the URLs
// visited that day with their hit counts, most visited first.
//
// Each input line has the form "<timestampSeconds>|<url>".
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

// Execute runs the root command.
func Execute() error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	return newRootCommand().ExecuteContext(context.Background())
}
