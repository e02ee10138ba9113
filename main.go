package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func main() {
	// Values from a .env file become flag defaults; flags still win.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  cms-server serve [--port 3000] [--data data] [--public public]")
		os.Exit(1)
	}

	cmd := os.Args[1]
	if cmd != "serve" {
		log.Fatalf("unknown command: %s", cmd)
	}

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.Int("port", envInt("PORT", 3000), "server port")
	dataDir := fs.String("data", envStr("DATA_DIR", "data"), "document storage directory")
	publicDir := fs.String("public", envStr("PUBLIC_DIR", "public"), "public static root")

	_ = fs.Parse(os.Args[2:])

	startServer(*dataDir, *publicDir, *port)
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
