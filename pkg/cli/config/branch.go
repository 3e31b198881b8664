package config

import (
	env "github.com/Netflix/go-env"
	"github.com/m-mizutani/goerr/v2"
	"github.com/publisherr/publisherr/pkg/domain/model"
)

// Branch holds the pull request branches provided by the pipeline. A variable
// that is set but empty keeps the empty value; defaults apply only when unset.
type Branch struct {
	Default string `env:"GITHUB_DEFAULT_BRANCH,default=default-branch"`
	Base    string `env:"GITHUB_BASE_REF,default=base-branch"`
	Current string `env:"GITHUB_HEAD_REF,default=current-branch"`
}

// LoadBranches reads the branch triple from the process environment
func LoadBranches() (*model.Branches, error) {
	var b Branch
	if _, err := env.UnmarshalFromEnviron(&b); err != nil {
		return nil, goerr.Wrap(err, "failed to load branches from environment")
	}
	return b.Branches(), nil
}

// LoadBranchesFrom reads the branch triple from an env set
func LoadBranchesFrom(es env.EnvSet) (*model.Branches, error) {
	var b Branch
	if err := env.Unmarshal(es, &b); err != nil {
		return nil, goerr.Wrap(err, "failed to load branches from environment")
	}
	return b.Branches(), nil
}

// Branches converts the loaded variables into the domain model
func (c *Branch) Branches() *model.Branches {
	return &model.Branches{
		Default: c.Default,
		Base:    c.Base,
		Current: c.Current,
	}
}
