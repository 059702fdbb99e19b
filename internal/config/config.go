package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the extraction pipeline needs: which blocks to
// drop, which retained block to scrub, and the input/output paths.
// The zero value is not usable; start from Default or Load.
type Config struct {
	// Keyword is the leading token of a block declaration (e.g. "model").
	Keyword string `yaml:"keyword"`

	// Input is the path of the full schema to read.
	Input string `yaml:"input"`

	// Output is the path the reduced schema is written to.
	Output string `yaml:"output"`

	// Exclude lists block names removed in their entirety.
	Exclude []string `yaml:"exclude"`

	// Target configures scrubbing inside one retained block.
	Target Target `yaml:"target"`
}

// Target identifies the one retained block whose relation lines are
// scrubbed, and the note inserted in their place.
type Target struct {
	// Name of the retained block (e.g. "CritUser").
	Name string `yaml:"name"`

	// Fragments are substrings; any non-comment line inside the target
	// block containing one is dropped.
	Fragments []string `yaml:"fragments"`

	// Note lines are inserted before the target block's closing brace,
	// after a blank line. Rendered as a template with .Target available.
	Note []string `yaml:"note"`
}

// Default returns the built-in configuration: the website-only extraction
// from the full Crit-Fumble schema (drop the RPG and Foundry models, scrub
// RPG relations from CritUser).
func Default() *Config {
	return &Config{
		Keyword: "model",
		Input:   "prisma/schema-full-original.txt",
		Output:  "prisma/schema.prisma",
		Exclude: []string{
			"RpgPlayer", "RpgSession", "RpgHistory", "RpgTimeline", "RpgAltHistory",
			"RpgAsset", "RpgTile", "RpgExpansion", "RpgExpansionAccess", "RpgSheet",
			"RpgBoard", "RpgThing", "RpgCreature", "RpgWorld", "RpgWorldWiki",
			"RpgWorldWikiRevision", "RpgCampaign", "CampaignMember", "RpgType",
			"RpgTable", "RpgCard", "RpgDeck", "RpgRule", "RpgEvent", "RpgGoal",
			"RpgMode", "RpgSystem", "RpgActivity", "RpgSubSystem", "RpgAttribute",
			"RpgLocation", "RpgBook", "RpgVoxel", "FoundryLicense", "FoundryInstance",
			"FoundryWorldSnapshot",
		},
		Target: Target{
			Name: "CritUser",
			Fragments: []string{
				"ownedWorlds", "rpgPlayer", "RpgWorld", "RpgPlayer",
				"authoredWorldWikiPages", "lastEditedWorldWikiPages",
				"worldWikiRevisions", "RpgWorldWiki",
			},
			Note: []string{
				"  // NOTE: RPG-related relations (rpgPlayer, ownedWorlds, worldWiki) are now in",
				"  // the separate Core Concepts database and accessed via the unified facade",
			},
		},
	}
}

// Load reads schemaprune.yml from the working directory (or the explicit
// path, if given) over the built-in defaults. Environment variables with
// the SCHEMAPRUNE prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("schemaprune")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("SCHEMAPRUNE")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing schemaprune.yml means run with the defaults; an
		// explicitly named file must exist.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		Keyword: v.GetString("keyword"),
		Input:   v.GetString("input"),
		Output:  v.GetString("output"),
		Exclude: v.GetStringSlice("exclude"),
		Target: Target{
			Name:      v.GetString("target.name"),
			Fragments: v.GetStringSlice("target.fragments"),
			Note:      v.GetStringSlice("target.note"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("keyword", def.Keyword)
	v.SetDefault("input", def.Input)
	v.SetDefault("output", def.Output)
	v.SetDefault("exclude", def.Exclude)
	v.SetDefault("target.name", def.Target.Name)
	v.SetDefault("target.fragments", def.Target.Fragments)
	v.SetDefault("target.note", def.Target.Note)
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Keyword == "" {
		return fmt.Errorf("keyword not specified")
	}
	if c.Input == "" {
		return fmt.Errorf("input path not specified")
	}
	if c.Output == "" {
		return fmt.Errorf("output path not specified")
	}
	if c.Target.Name != "" && len(c.Target.Fragments) == 0 {
		return fmt.Errorf("target %q has no fragments to scrub", c.Target.Name)
	}
	return nil
}
