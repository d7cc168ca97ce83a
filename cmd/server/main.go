// Package main is the entry point for the kalimba2midi API server
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/james-see/kalimba2midi/pkg/api"
	"github.com/sirupsen/logrus"
)

func main() {
	port := flag.Int("port", 8080, "Server port")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	fmt.Printf("Starting kalimba2midi API server on port %d...\n", *port)
	fmt.Printf("Swagger docs available at http://localhost:%d/swagger/index.html\n", *port)

	if err := api.StartServer(*port, log); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
