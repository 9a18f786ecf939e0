package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"storefront-voting/api"
	"storefront-voting/config"
	"storefront-voting/helper"
)

var (
	optSecret = flag.String("secret", "", "HMAC secret, defaults to RESULTS_JWT_SECRET")
	optTTL    = flag.Duration("ttl", 24*time.Hour, "token lifetime")
)

// Prints a bearer token accepted by the dev server's /results route.
func main() {
	flag.Parse()
	config := config.GetConfig()
	logger := helper.NewLogger("results-token", config.LOG_LEVEL)

	secret := *optSecret
	if secret == "" {
		secret = config.RESULTS_JWT_SECRET
	}
	if secret == "" {
		logger.Fatal("*** --secret or RESULTS_JWT_SECRET must be specified.")
	}

	token, err := api.IssueResultsToken(secret, *optTTL)
	if err != nil {
		logger.Fatalf("IssueResultsToken: %v", err)
	}
	fmt.Fprintln(os.Stdout, token)
}
