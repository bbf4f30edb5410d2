package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"brandkit/internal/stub"
	"brandkit/internal/utils"
)

func main() {
	addr := flag.String("addr", getenvDefault("BRANDINGSTUB_ADDR", "127.0.0.1:8089"), "listen address")
	token := flag.String("token", os.Getenv("BRANDINGSTUB_TOKEN"), "operator bearer token accepted for writes")
	dataDir := flag.String("data-dir", os.Getenv("BRANDINGSTUB_DATA_DIR"), "directory for uploaded logo files (empty keeps them in memory)")
	flag.Parse()

	if *token == "" {
		*token = "dev-operator-token"
		log.Printf("no operator token configured, using %q", *token)
	}

	store, err := stub.NewStore(*dataDir)
	if err != nil {
		log.Fatal(err)
	}
	srv, err := stub.NewServer(store, *token, utils.NewWriterLogger(os.Stderr))
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("branding stub listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv.Router()))
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
