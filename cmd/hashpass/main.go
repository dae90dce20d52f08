package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abcde-dev/abcdecom/pkg"
)

// prints a bcrypt hash for seeding an admin row by hand
func main() {
	password := flag.String("password", "", "password to hash")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpass -password <password>")
		os.Exit(1)
	}

	hash, err := pkg.HashPassword(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
