// Command circleimage renders an image clipped to a circle with an optional
// ring border and writes the result to a file.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
