package config

import (
	"context"
	"fmt"
	"loanproposal/cmd/internal/infrastructure/proposalapi"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/text/language"
)

const (
	envVarsPrefix = "/loanproposal/prod/"
	defaultRegion = "us-east-2"
)

type Config struct {
	Environment string
	Port        int

	ProposalAPIURL     string
	ProposalAPITimeout time.Duration

	DefaultLanguage language.Tag
}

func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadEnv fills the process environment: from AWS SSM Parameter Store in
// production and from .env everywhere else. A missing .env is not an error.
func LoadEnv(ctx context.Context) error {
	if os.Getenv("GO_ENV") == "production" {
		return loadProdEnv(ctx)
	}

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FromEnv reads the configuration from the environment.
func FromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "7070"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	timeout, err := time.ParseDuration(getEnvOrDefault("PROPOSAL_API_TIMEOUT", proposalapi.DefaultTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid PROPOSAL_API_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid PROPOSAL_API_TIMEOUT: must be positive, got %s", timeout)
	}

	lang, err := language.Parse(getEnvOrDefault("DEFAULT_LANG", "pt-BR"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_LANG: %w", err)
	}

	return &Config{
		Environment:        getEnvOrDefault("GO_ENV", "development"),
		Port:               port,
		ProposalAPIURL:     getEnvOrDefault("PROPOSAL_API_URL", proposalapi.DefaultBaseURL),
		ProposalAPITimeout: timeout,
		DefaultLanguage:    lang,
	}, nil
}

func loadProdEnv(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(getEnvOrDefault("AWS_REGION", defaultRegion)))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := aws.ToString(param.Name)[len(envVarsPrefix):]
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			loaded++
		}
	}

	log.Debugf("loaded %d prod environment variables", loaded)
	return nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
