package model

// ManifestFileName is the optional metadata file a template repository may
// carry at its root. The rewriter always skips it so the engine never
// rewrites its own artifact.
const ManifestFileName = "plate.template.yaml"

// Manifest describes optional template metadata.
type Manifest struct {
	Version int `yaml:"version"`

	// Platforms maps a platform name to the subfolder of the template
	// holding that platform's tree. An empty map means the whole template
	// tree is the project skeleton.
	Platforms map[string]string `yaml:"platforms"`

	// Post lists shell commands to run in the destination after the
	// rewrite (e.g. "git init", a dependency-manager command).
	Post []string `yaml:"post"`

	// Exclude lists extra entry names the rewriter must leave untouched.
	Exclude []string `yaml:"exclude"`
}

// Summary describes a completed scaffold for display.
type Summary struct {
	Project     string
	Destination Path
	Template    string
	Platform    string
}
