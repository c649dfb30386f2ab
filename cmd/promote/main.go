// Command promote grants administrator rights to a user by username.
// It is used to bootstrap admins beyond the first registered account.
//
// Usage:
//
//	promote --username=muki
//
// It uses the same configuration as the server. AUTH_JWT_SECRET must be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/bugtracker/internal/app"
	"github.com/heartmarshall/bugtracker/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of the user to promote to admin")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=muki")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, changed, err := app.PromoteUser(ctx, os.Stderr, *username)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with username %q.\n", *username)
		cancel()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("promote user: %v", err)
	}

	if !changed {
		fmt.Printf("User %q is already an admin.\n", user.Username)
		return
	}
	fmt.Printf("User %q promoted to admin.\n", user.Username)
}
