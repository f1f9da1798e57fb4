package main

import (
	"log"
	"os"
	"path/filepath"

	"ordergen/cmd"
	"ordergen/constants"
)

func main() {
	outputDir := constants.DefaultDocsDir

	// If an argument is provided, use it as the output directory
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}

	if err := cmd.GenerateDocs(cmd.GetRootCmd(), outputDir); err != nil {
		log.Fatalf("Failed to generate documentation: %v", err)
	}

	absPath, err := filepath.Abs(outputDir)
	if err != nil {
		log.Fatalf("Failed to get absolute path: %v", err)
	}

	log.Printf("Documentation successfully generated in %s", absPath)
}
