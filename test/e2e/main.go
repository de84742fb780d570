package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/coffeehouse/e2e/internal/config"
)

type configuration struct {
	BaseURL     string
	GraphQLURL  string
	DatabaseURL string
}

var cfg configuration

func (c configuration) Validate() error {
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("failed to parse base url: %v", err)
	}
	if _, err := url.Parse(c.GraphQLURL); err != nil {
		return fmt.Errorf("failed to parse graphql url: %v", err)
	}
	if c.DatabaseURL == "" {
		return errors.New("database url is empty")
	}
	return nil
}

func main() {
	defaults := config.Load()
	flag.StringVar(&cfg.BaseURL, "base-url", defaults.BaseURL, "Backend REST base URL")
	flag.StringVar(&cfg.GraphQLURL, "graphql-url", defaults.GraphQLURL, "Backend GraphQL endpoint")
	flag.StringVar(&cfg.DatabaseURL, "database-url", defaults.DatabaseURL, "Postgres connection string")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("failed to validate configuration: %v", err)
	}

	RegisterFailHandler(Fail)
	if !RunSpecs(&testing.T{}, "Coffeehouse E2E Suite") {
		os.Exit(1)
	}
}
