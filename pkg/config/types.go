// Package config provides configuration loading and validation for textkit
// scan jobs.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Sources lists file paths or glob patterns to read.
	Sources []string `yaml:"sources"`

	// CommentMarker is the character set that starts a trailing comment.
	// Empty disables comment stripping.
	CommentMarker string `yaml:"comment_marker"`

	// Delimiters is the token delimiter character set.
	Delimiters string `yaml:"delimiters"`

	// SkipEmpty drops empty tokens produced by adjacent delimiters.
	SkipEmpty *bool `yaml:"skip_empty,omitempty"`

	// Steps is the transform pipeline applied to every logical line.
	Steps []StepConfig `yaml:"steps,omitempty"`

	// Output selects the report format: text or json.
	Output string `yaml:"output,omitempty"`
}

// StepConfig defines a single transform step. Op names a transform; Target
// and With parameterize the replace/erase family.
type StepConfig struct {
	Op     string `yaml:"op"`
	Target string `yaml:"target,omitempty"`
	With   string `yaml:"with,omitempty"`
}

// UnmarshalYAML supports the shorthand form `- upper` as well as the mapping
// form `- {op: replace, target: a, with: b}`.
func (s *StepConfig) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		s.Op = name
		return nil
	}

	type plain StepConfig
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*s = StepConfig(p)
	return nil
}

// SkipEmptyTokens reports the effective skip-empty setting (default true).
func (c *Config) SkipEmptyTokens() bool {
	if c.SkipEmpty == nil {
		return true
	}
	return *c.SkipEmpty
}
