package main

import (
	"os"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
