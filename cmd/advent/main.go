package main

import (
	"fmt"
	"os"

	_ "advent/internal/calendar/y2022"
	_ "advent/internal/calendar/y2023"
	_ "advent/internal/calendar/y2024"
	_ "advent/internal/calendar/y2025"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "advent:", err)
		os.Exit(1)
	}
}
