// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package config reads the cvm configuration file and applies the
// environment overrides on top of it.
package config

import (
	"os"
	"time"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/schema"
	"gopkg.in/yaml.v3"

	"github.com/juju/cvm/osenv"
	"github.com/juju/cvm/release"
)

var logger = loggo.GetLogger("cvm.config")

const (
	OwnerKey     = "owner"
	RepoKey      = "repo"
	ServiceKey   = "service"
	APIURLKey    = "api-url"
	UserAgentKey = "user-agent"
	TimeoutKey   = "timeout"
	BinaryKey    = "binary"
)

const (
	DefaultOwner   = "cloudflare"
	DefaultRepo    = "cloudflared"
	DefaultService = "cloudflared"
	DefaultBinary  = "cloudflared"
	DefaultTimeout = 30 * time.Second
)

// environmentVariables maps config keys to the variables that override
// them.
var environmentVariables = map[string]string{
	OwnerKey:   osenv.CvmOwnerEnvKey,
	RepoKey:    osenv.CvmRepoEnvKey,
	ServiceKey: osenv.CvmServiceEnvKey,
	APIURLKey:  osenv.CvmAPIURLEnvKey,
	TimeoutKey: osenv.CvmTimeoutEnvKey,
}

var configFields = schema.Fields{
	OwnerKey:     schema.String(),
	RepoKey:      schema.String(),
	ServiceKey:   schema.String(),
	APIURLKey:    schema.String(),
	UserAgentKey: schema.String(),
	TimeoutKey:   schema.TimeDuration(),
	BinaryKey:    schema.String(),
}

var configDefaults = schema.Defaults{
	OwnerKey:     DefaultOwner,
	RepoKey:      DefaultRepo,
	ServiceKey:   DefaultService,
	APIURLKey:    release.DefaultBaseURL,
	UserAgentKey: release.DefaultUserAgent,
	TimeoutKey:   DefaultTimeout,
	BinaryKey:    DefaultBinary,
}

var configChecker = schema.StrictFieldMap(configFields, configDefaults)

// Config holds the settings shared by all cvm commands.
type Config struct {
	Owner     string
	Repo      string
	Service   string
	APIURL    string
	UserAgent string
	Timeout   time.Duration
	Binary    string

	// Token authorises catalog requests. It only ever comes from the
	// environment.
	Token string
}

// ClientConfig returns the catalog client settings held by c.
func (c *Config) ClientConfig() release.ClientConfig {
	return release.ClientConfig{
		BaseURL:   c.APIURL,
		UserAgent: c.UserAgent,
		Token:     c.Token,
	}
}

// Validate returns an error if c cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Owner == "":
		return errors.NotValidf("empty %s", OwnerKey)
	case c.Repo == "":
		return errors.NotValidf("empty %s", RepoKey)
	case c.Service == "":
		return errors.NotValidf("empty %s", ServiceKey)
	case c.Binary == "":
		return errors.NotValidf("empty %s", BinaryKey)
	case c.Timeout <= 0:
		return errors.NotValidf("%s %v", TimeoutKey, c.Timeout)
	}
	if err := c.ClientConfig().Validate(); err != nil {
		return errors.Annotatef(err, "%s", APIURLKey)
	}
	return nil
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	cfg, err := New(nil)
	if err != nil {
		panic(err)
	}
	return cfg
}

// New builds a Config from attrs, filling in defaults. Unknown keys are
// rejected.
func New(attrs map[string]interface{}) (*Config, error) {
	if attrs == nil {
		attrs = make(map[string]interface{})
	}
	coerced, err := configChecker.Coerce(attrs, nil)
	if err != nil {
		return nil, errors.NewNotValid(err, "invalid configuration")
	}
	values := coerced.(map[string]interface{})
	cfg := &Config{
		Owner:     values[OwnerKey].(string),
		Repo:      values[RepoKey].(string),
		Service:   values[ServiceKey].(string),
		APIURL:    values[APIURLKey].(string),
		UserAgent: values[UserAgentKey].(string),
		Timeout:   values[TimeoutKey].(time.Duration),
		Binary:    values[BinaryKey].(string),
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// ReadFile reads the configuration at path, then applies the environment
// overrides. A missing file is not an error.
func ReadFile(path string) (*Config, error) {
	attrs := make(map[string]interface{})
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logger.Debugf("no configuration at %q, using defaults", path)
	case err != nil:
		return nil, errors.Annotatef(err, "reading %q", path)
	default:
		if err := yaml.Unmarshal(data, &attrs); err != nil {
			return nil, errors.Annotatef(err, "parsing %q", path)
		}
		if attrs == nil {
			attrs = make(map[string]interface{})
		}
	}

	for key, envKey := range environmentVariables {
		if value := os.Getenv(envKey); value != "" {
			logger.Tracef("%s overridden by $%s", key, envKey)
			attrs[key] = value
		}
	}

	cfg, err := New(attrs)
	if err != nil {
		return nil, errors.Annotatef(err, "%q", path)
	}
	cfg.Token = os.Getenv(osenv.GitHubTokenEnvKey)
	return cfg, nil
}

// Read reads the configuration from its default location.
func Read() (*Config, error) {
	return ReadFile(osenv.ConfigFilePath())
}
