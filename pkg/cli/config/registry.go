package config

import (
	"bytes"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Registry holds package manager and publish configuration
type Registry struct {
	PackageManager string
	Access         string
	Dir            string
	DryRun         bool
	ConfigFile     string
}

// Flags returns CLI flags for registry configuration
func (c *Registry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "package-manager",
			Aliases:     []string{"m"},
			Usage:       "Package manager CLI to drive (pnpm, npm)",
			Value:       "pnpm",
			Destination: &c.PackageManager,
			Sources:     cli.EnvVars("PUBLISHERR_PACKAGE_MANAGER"),
		},
		&cli.StringFlag{
			Name:        "access",
			Usage:       "Publish access level (public, restricted)",
			Value:       "public",
			Destination: &c.Access,
			Sources:     cli.EnvVars("PUBLISHERR_ACCESS"),
		},
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"C"},
			Usage:       "Package directory containing package.json",
			Value:       ".",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("PUBLISHERR_DIR"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Pass --dry-run to the publish command",
			Destination: &c.DryRun,
			Sources:     cli.EnvVars("PUBLISHERR_DRY_RUN"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a TOML config file with a [registry] table",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("PUBLISHERR_CONFIG"),
		},
	}
}

type registryFile struct {
	Registry struct {
		PackageManager *string `toml:"package_manager"`
		Access         *string `toml:"access"`
		Dir            *string `toml:"dir"`
		DryRun         *bool   `toml:"dry_run"`
	} `toml:"registry"`
}

// LoadFile applies the config file to every setting whose flag isSet reports
// as not given on the command line or environment. It is a no-op without
// ConfigFile.
func (c *Registry) LoadFile(isSet func(name string) bool) error {
	if c.ConfigFile == "" {
		return nil
	}

	raw, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigFile))
	}

	var file registryFile
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigFile))
	}

	r := file.Registry
	if r.PackageManager != nil && !isSet("package-manager") {
		c.PackageManager = *r.PackageManager
	}
	if r.Access != nil && !isSet("access") {
		c.Access = *r.Access
	}
	if r.Dir != nil && !isSet("dir") {
		c.Dir = *r.Dir
	}
	if r.DryRun != nil && !isSet("dry-run") {
		c.DryRun = *r.DryRun
	}

	return nil
}
