package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plate.dev/pkg/plate/internal/adapter"
	"plate.dev/pkg/plate/internal/controller"
	m "plate.dev/pkg/plate/internal/model"
)

// ResolveInputs carries explicit values and configured defaults for building
// one run's substitution set. Defaults live here rather than in process-wide
// constants so callers always see where a value came from.
type ResolveInputs struct {
	Project      string
	Author       string
	Organization string
	BundleID     string

	// BundlePrefix derives a bundle identifier (prefix + "." + lowercased
	// project name) when BundleID is not given explicitly.
	BundlePrefix string

	// NoInput disables interactive prompting; missing values become errors.
	NoInput bool

	// AllowMissing keeps unresolved tokens in the set with empty values
	// instead of failing. Used for display-only flows.
	AllowMissing bool

	// Now overrides the clock for the date-bearing tokens. Nil means
	// time.Now.
	Now func() time.Time
}

// Resolver builds the immutable substitution set for one run from explicit
// inputs, configured defaults, the version-control client's user name, and
// interactive answers.
type Resolver interface {
	Resolve(ctx context.Context, in ResolveInputs) (m.Substitutions, error)
}

type resolver struct {
	git    adapter.GitAdapter
	prompt controller.Prompter
}

// NewResolver creates a Resolver. git supplies the author fallback; prompt
// is consulted for values that remain missing.
func NewResolver(git adapter.GitAdapter, prompt controller.Prompter) Resolver {
	return &resolver{git: git, prompt: prompt}
}

// Resolve builds the full substitution set. It fails when a required value
// cannot be obtained, so the rewriter never runs with a partial set.
func (r *resolver) Resolve(ctx context.Context, in ResolveInputs) (m.Substitutions, error) {
	project := strings.TrimSpace(in.Project)
	if project == "" && !in.AllowMissing {
		return nil, fmt.Errorf("project name must not be empty")
	}

	now := time.Now
	if in.Now != nil {
		now = in.Now
	}

	current := now()

	author := strings.TrimSpace(in.Author)
	if author == "" && r.git != nil {
		// Best effort: an unset git user name just falls through to the prompt.
		if name, err := r.git.UserName(ctx); err == nil {
			author = name
		}
	}

	author, err := r.fill(ctx, in, author, "Author name", "")
	if err != nil {
		return nil, err
	}

	organization, err := r.fill(ctx, in, strings.TrimSpace(in.Organization), "Organization name", author)
	if err != nil {
		return nil, err
	}

	bundleID := strings.TrimSpace(in.BundleID)
	if bundleID == "" && in.BundlePrefix != "" && project != "" {
		bundleID = in.BundlePrefix + "." + bundleComponent(project)
	}

	bundleID, err = r.fill(ctx, in, bundleID, "Bundle identifier", "")
	if err != nil {
		return nil, err
	}

	return m.Substitutions{
		{Token: m.TokenProject, Value: project},
		{Token: m.TokenAuthor, Value: author},
		{Token: m.TokenYear, Value: current.Format("2006")},
		{Token: m.TokenToday, Value: current.Format("1/2/2006")},
		{Token: m.TokenDate, Value: current.Format("Jan 2, 2006")},
		{Token: m.TokenOrganization, Value: organization},
		{Token: m.TokenBundleID, Value: bundleID},
	}, nil
}

// fill resolves a still-missing value by prompting, or fails when the run is
// non-interactive.
func (r *resolver) fill(ctx context.Context, in ResolveInputs, value, question, fallback string) (string, error) {
	if value != "" {
		return value, nil
	}

	if in.AllowMissing {
		return fallback, nil
	}

	if in.NoInput || r.prompt == nil {
		return "", fmt.Errorf("%s not provided; pass a flag or set a default in the config file", strings.ToLower(question))
	}

	answer, err := r.prompt.Ask(ctx, question, fallback)
	if err != nil {
		return "", fmt.Errorf("prompt for %s: %w", strings.ToLower(question), err)
	}

	if strings.TrimSpace(answer) == "" {
		return "", fmt.Errorf("%s must not be empty", strings.ToLower(question))
	}

	return strings.TrimSpace(answer), nil
}

// bundleComponent lowercases the project name and strips everything that is
// not a letter or digit, so the derived identifier stays valid.
func bundleComponent(project string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(project) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
