// Command partner-client sends signed requests to the partner API of an
// identity vault. It is meant for partner onboarding and smoke tests.
//
// Usage:
//
//	partner-client -addr http://localhost:8080 -key pk_... -secret ... verify <user-uuid>
//	partner-client ... check <user-uuid> <service-id>
//	partner-client ... public-key <user-uuid>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/adapter"
)

var errUsage = errors.New("usage: partner-client [flags] verify <uuid> | check <uuid> <service-id> | public-key <uuid>")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("partner-client", flag.ContinueOnError)
	addr := fs.String("addr", envOr("PARTNER_API_ADDRESS", "http://localhost:8080"), "identity vault base URL")
	apiKey := fs.String("key", os.Getenv("PARTNER_API_KEY"), "partner API key")
	apiSecret := fs.String("secret", os.Getenv("PARTNER_API_SECRET"), "partner API secret")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 || *apiKey == "" || *apiSecret == "" {
		return errUsage
	}

	client, err := adapter.NewPartnerClient(*addr, adapter.PartnerCredentials{APIKey: *apiKey, APISecret: *apiSecret}, *timeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var result any
	switch rest[0] {
	case "verify":
		result, err = client.VerifyIdentity(ctx, rest[1])
	case "check":
		if len(rest) < 3 {
			return errUsage
		}
		serviceID, parseErr := strconv.ParseInt(rest[2], 10, 64)
		if parseErr != nil {
			return fmt.Errorf("invalid service id %q: %w", rest[2], parseErr)
		}
		result, err = client.CheckAuthorization(ctx, rest[1], serviceID)
	case "public-key":
		result, err = client.PublicKey(ctx, rest[1])
	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
