package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-baki-pos/internal/service"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Prints a bcrypt hash for OPERATOR_PIN_HASH.
//
//	go run ./cmd/hash-pin -pin 4321
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	pin := flag.String("pin", os.Getenv("OPERATOR_PIN"), "operator PIN to hash")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if *pin == "" {
		log.Fatal("❌ No PIN given: pass -pin or set OPERATOR_PIN")
	}
	if len(*pin) < 4 {
		log.Fatal("❌ PIN must be at least 4 characters")
	}

	hashed, err := service.HashPIN(*pin, *cost)
	if err != nil {
		log.Fatalf("❌ Failed to hash PIN: %v", err)
	}

	log.Println("✅ Add this line to .env")
	fmt.Printf("OPERATOR_PIN_HASH=%s\n", hashed)
}
