// Command hashpw prints the argon2id PHC hash of a password, for use as the
// ADMIN_PASS_HASH setting.
package main

import (
	"fmt"
	"os"

	"github.com/bakehouse/bakehouse-go/internal/crypto"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}

	hash, err := crypto.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
