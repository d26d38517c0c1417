package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/pixel-node/helpdesk/pkg/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
