package codegen

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config controls code generation. It is normally read from a TOML file;
// relative paths in the file are taken relative to the file's directory.
type Config struct {
	// Grammar is the path of the grammar text.
	Grammar string `toml:"grammar"`

	// StartRules are the rules that must consume the whole input. The first
	// is also the start rule for FOLLOW sets.
	StartRules []string `toml:"start_rules"`

	// CaseSensitive lists keywords that only match when spelled exactly.
	CaseSensitive []string `toml:"case_sensitive"`

	// Punctuation gives the constant name of each punctuation literal.
	Punctuation map[string]string `toml:"punctuation"`

	Output   OutputConfig  `toml:"output"`
	Packages PackageConfig `toml:"packages"`
}

// OutputConfig is where generated files are written.
type OutputConfig struct {
	Rules      string `toml:"rules"`
	TreeKinds  string `toml:"tree_kinds"`
	TokenKinds string `toml:"token_kinds"`
}

// PackageConfig names the packages the generated files belong to.
type PackageConfig struct {
	// Parser is the name of the package the rule routines are generated
	// into.
	Parser string `toml:"parser"`

	// Syntax is the import path of the tree package.
	Syntax string `toml:"syntax"`

	// Token is the import path of the token package.
	Token string `toml:"token"`
}

// LoadConfig reads a Config from the TOML file at file.
func LoadConfig(file string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(file, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	dir := filepath.Dir(file)
	for _, p := range []*string{&cfg.Grammar, &cfg.Output.Rules, &cfg.Output.TreeKinds, &cfg.Output.TokenKinds} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}

	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FillDefaults sets every unset package name to its usual value.
func (cfg *Config) FillDefaults() {
	if cfg.Packages.Parser == "" {
		cfg.Packages.Parser = "parse"
	}
	if cfg.Packages.Syntax == "" {
		cfg.Packages.Syntax = "github.com/dekarrin/marlin/syntax"
	}
	if cfg.Packages.Token == "" {
		cfg.Packages.Token = "github.com/dekarrin/marlin/token"
	}
}

// Validate returns an error if cfg cannot be used to generate code.
func (cfg Config) Validate() error {
	if len(cfg.StartRules) == 0 {
		return fmt.Errorf("start_rules: at least one start rule is required")
	}
	for lit, name := range cfg.Punctuation {
		if !isIdentifier(name) {
			return fmt.Errorf("punctuation: %q is not a valid name for %q", name, lit)
		}
	}
	return nil
}

func (cfg Config) syntaxQualifier() string {
	return path.Base(cfg.Packages.Syntax)
}

func (cfg Config) tokenQualifier() string {
	return path.Base(cfg.Packages.Token)
}
