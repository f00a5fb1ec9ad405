package config

import (
	"os"
	"strings"
)

// Environment selects which loader fills the Config.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads ENV. CI=true overrides it so pipelines never pick up
// production secrets.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch env := Environment(strings.ToLower(os.Getenv("ENV"))); env {
	case Production, Test:
		return env
	default:
		return Development
	}
}

// IsProduction reports whether secrets come from files and gin runs in
// release mode.
func (e Environment) IsProduction() bool {
	return e == Production
}

// IsDevelopment reports whether logs use the console encoder.
func (e Environment) IsDevelopment() bool {
	return e == Development
}
