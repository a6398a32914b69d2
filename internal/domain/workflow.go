package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"plate.dev/pkg/plate/internal/adapter"
	"plate.dev/pkg/plate/internal/controller"
	m "plate.dev/pkg/plate/internal/model"
)

// ScaffoldArgs contains the arguments for scaffolding a new project.
type ScaffoldArgs struct {
	Project     string
	Destination m.Path

	// Template is a repository URL to clone or a local template directory.
	Template string

	// Platform selects a subfolder of the template, by manifest platform
	// name or literal subfolder name. Empty means the whole template tree.
	Platform string

	Author       string
	Organization string
	BundleID     string
	BundlePrefix string

	NoInput  bool
	SkipPost bool
	Force    bool
	Atomic   bool
}

// RewriteArgs contains the arguments for rewriting an existing tree.
type RewriteArgs struct {
	Root m.Path

	Project      string
	Author       string
	Organization string
	BundleID     string
	BundlePrefix string

	NoInput bool
	Atomic  bool
	Exclude []string
}

// TokensArgs contains the arguments for displaying the token set.
type TokensArgs struct {
	Project      string
	Author       string
	Organization string
	BundleID     string
	BundlePrefix string
}

// Workflow defines the top-level scaffolding operations behind the CLI.
type Workflow interface {
	Scaffold(ctx context.Context, args ScaffoldArgs) error
	Rewrite(ctx context.Context, args RewriteArgs) error
	Tokens(ctx context.Context, args TokensArgs) error
}

type workflow struct {
	fs        adapter.TemplateFSAdapter
	git       adapter.GitAdapter
	manifests adapter.ManifestStore
	runner    adapter.CommandRunner
	resolver  Resolver
	ui        controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	fs adapter.TemplateFSAdapter,
	git adapter.GitAdapter,
	manifests adapter.ManifestStore,
	runner adapter.CommandRunner,
	resolver Resolver,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:        fs,
		git:       git,
		manifests: manifests,
		runner:    runner,
		resolver:  resolver,
		ui:        ui,
	}
}

// Scaffold runs the full pipeline: fetch template, select platform subtree,
// copy into the destination, rewrite tokens in place, run post commands.
func (w *workflow) Scaffold(ctx context.Context, args ScaffoldArgs) error {
	set, err := w.resolver.Resolve(ctx, ResolveInputs{
		Project:      args.Project,
		Author:       args.Author,
		Organization: args.Organization,
		BundleID:     args.BundleID,
		BundlePrefix: args.BundlePrefix,
		NoInput:      args.NoInput,
	})
	if err != nil {
		return fmt.Errorf("resolve substitutions: %w", err)
	}

	templateRoot, cleanup, err := w.fetchTemplate(ctx, args.Template)
	if err != nil {
		return fmt.Errorf("fetch template: %w", err)
	}

	defer cleanup()

	manifest, err := w.manifests.Load(templateRoot)
	if err != nil {
		return fmt.Errorf("load template manifest: %w", err)
	}

	src, err := w.selectPlatform(templateRoot, manifest, args.Platform)
	if err != nil {
		return err
	}

	if _, statErr := w.fs.Lstat(args.Destination); statErr == nil && !args.Force {
		return fmt.Errorf("destination %s already exists (use --force to scaffold into it)", args.Destination)
	}

	if err := w.fs.MkdirAll(args.Destination, 0o750); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	w.ui.DisplayStep(ctx, "copying template into %s", args.Destination)

	if err := w.fs.CopyDir(src, args.Destination); err != nil {
		return fmt.Errorf("copy template: %w", err)
	}

	w.ui.DisplayStep(ctx, "rewriting tokens")

	rewriter := NewRewriter(w.fs, RewriteOptions{Atomic: args.Atomic, Exclude: manifest.Exclude})
	if err := rewriter.RewriteTree(args.Destination, set); err != nil {
		return fmt.Errorf("rewrite tree: %w", err)
	}

	// The manifest describes the template, not the scaffolded project.
	manifestCopy := w.fs.JoinPath(string(args.Destination), m.ManifestFileName)
	if err := w.fs.Remove(manifestCopy); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove manifest copy: %w", err)
	}

	if !args.SkipPost {
		if err := w.runPostCommands(ctx, args.Destination, manifest.Post); err != nil {
			return err
		}
	}

	w.ui.DisplaySummary(ctx, m.Summary{
		Project:     args.Project,
		Destination: args.Destination,
		Template:    args.Template,
		Platform:    args.Platform,
	})

	return nil
}

// Rewrite exposes the engine directly over an existing directory.
func (w *workflow) Rewrite(ctx context.Context, args RewriteArgs) error {
	set, err := w.resolver.Resolve(ctx, ResolveInputs{
		Project:      args.Project,
		Author:       args.Author,
		Organization: args.Organization,
		BundleID:     args.BundleID,
		BundlePrefix: args.BundlePrefix,
		NoInput:      args.NoInput,
	})
	if err != nil {
		return fmt.Errorf("resolve substitutions: %w", err)
	}

	rewriter := NewRewriter(w.fs, RewriteOptions{Atomic: args.Atomic, Exclude: args.Exclude})

	return rewriter.RewriteTree(args.Root, set)
}

// Tokens resolves what it can without prompting and displays the set.
func (w *workflow) Tokens(ctx context.Context, args TokensArgs) error {
	set, err := w.resolver.Resolve(ctx, ResolveInputs{
		Project:      args.Project,
		Author:       args.Author,
		Organization: args.Organization,
		BundleID:     args.BundleID,
		BundlePrefix: args.BundlePrefix,
		NoInput:      true,
		AllowMissing: true,
	})
	if err != nil {
		return fmt.Errorf("resolve substitutions: %w", err)
	}

	return w.ui.DisplayTokens(ctx, set)
}

// fetchTemplate returns the template root and a cleanup func. A local
// directory is used as-is; anything else is treated as a repository URL and
// shallow-cloned into a temp dir.
func (w *workflow) fetchTemplate(ctx context.Context, template string) (m.Path, func(), error) {
	if info, err := w.fs.Lstat(m.Path(template)); err == nil && info.IsDir() {
		slog.Debug("using local template directory", "path", template)
		return m.Path(template), func() {}, nil
	}

	tmpDir, err := w.fs.CreateTempDir("plate-template-")
	if err != nil {
		return "", nil, err
	}

	w.ui.DisplayStep(ctx, "cloning %s", template)

	if err := w.git.Clone(ctx, template, tmpDir); err != nil {
		_ = w.fs.RemoveAll(tmpDir)
		return "", nil, err
	}

	return tmpDir, func() { _ = w.fs.RemoveAll(tmpDir) }, nil
}

// selectPlatform resolves the platform subtree. The manifest mapping wins;
// otherwise the platform name is tried as a literal subfolder.
func (w *workflow) selectPlatform(root m.Path, manifest m.Manifest, platform string) (m.Path, error) {
	if platform == "" {
		return root, nil
	}

	subfolder, ok := manifest.Platforms[platform]
	if !ok {
		subfolder = platform
	}

	candidate := w.fs.JoinPath(string(root), subfolder)

	info, err := w.fs.Lstat(candidate)
	if err != nil {
		return "", fmt.Errorf("platform %q: %w", platform, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("platform %q: %s is not a directory", platform, candidate)
	}

	return candidate, nil
}

func (w *workflow) runPostCommands(ctx context.Context, dest m.Path, commands []string) error {
	for _, command := range commands {
		output, err := w.runner.Run(ctx, dest, command)
		w.ui.DisplayPostCommand(ctx, command, output, err)

		if err != nil {
			return fmt.Errorf("post command %q: %w", command, err)
		}
	}

	return nil
}
