package main

import (
	"flag"
	"log"
	"os"

	"go-eye-demo/internal/snapshot"
)

func main() {
	cfg, err := snapshot.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := snapshot.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("snapshot: %v", err)
	}
}
