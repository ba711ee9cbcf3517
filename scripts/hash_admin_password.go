package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Generates the bcrypt hash for ADMIN_PASSWORD_HASH. The server never stores
// or accepts the plaintext admin password in configuration.
func main() {
	password := flag.String("password", "", "Admin password to hash")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: go run scripts/hash_admin_password.go -password <password>")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), *cost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	fmt.Println("Add this to your environment or .env file:")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", string(hash))
}
