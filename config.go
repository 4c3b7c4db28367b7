package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Offset places a pattern of a given size on the 3x3 grid.
type Offset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
}

// Config carries the data locations and search switches.
type Config struct {
	// RecipeDir holds one JSON file per recipe (Minecraft data/recipe layout).
	RecipeDir string `yaml:"recipe_dir"`
	// TagDir holds item tag files referenced as "#name" or {"tag": ...}.
	TagDir string `yaml:"tag_dir"`
	// EmptyItem is the identifier of an unfilled slot.
	EmptyItem string `yaml:"empty_item"`
	// Namespace is stripped for display and optional when naming items.
	Namespace string `yaml:"namespace"`
	// Vocabulary lists the accepted items. Recipes using anything else are dropped.
	Vocabulary []string `yaml:"vocabulary"`
	// Offsets is where answers of each pattern size sit on the grid.
	Offsets []Offset `yaml:"offsets"`
	// ShapelessAnswers admits shapeless recipes into the answer pool.
	ShapelessAnswers bool `yaml:"shapeless_answers"`
	// Memoize caches worst-case results by pool content.
	Memoize bool `yaml:"memoize"`
	// Openers are fixed first guesses for greedy play, one craft per entry.
	Openers []string `yaml:"openers"`
}

// Verbose controls whether per-recipe enumeration detail is logged.
var Verbose bool

// DefaultConfig returns the stock Minecraft setup.
func DefaultConfig() Config {
	return Config{
		RecipeDir: "./recipe/",
		TagDir:    "./tags/item/",
		EmptyItem: "minecraft:air",
		Namespace: "minecraft:",
		Vocabulary: []string{
			"minecraft:air",
			"minecraft:oak_planks",
			"minecraft:cobblestone",
			"minecraft:stone",
			"minecraft:glass",
			"minecraft:white_wool",
			"minecraft:stick",
			"minecraft:coal",
			"minecraft:diamond",
			"minecraft:gold_ingot",
			"minecraft:iron_ingot",
			"minecraft:redstone",
			"minecraft:quartz",
			"minecraft:oak_slab",
			"minecraft:oak_log",
			"minecraft:iron_nugget",
			"minecraft:redstone_torch",
			"minecraft:string",
			"minecraft:leather",
		},
		Offsets: []Offset{
			{Width: 1, Height: 1, X: 1, Y: 1},
			{Width: 1, Height: 2, X: 1, Y: 0},
			{Width: 1, Height: 3, X: 1, Y: 0},
		},
		ShapelessAnswers: true,
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the offset table fits the grid.
func (c *Config) Validate() error {
	if c.EmptyItem == "" {
		return fmt.Errorf("empty_item is required")
	}
	for _, o := range c.Offsets {
		if o.Width < 1 || o.Width > 3 || o.Height < 1 || o.Height > 3 {
			return fmt.Errorf("offset %dx%d: size out of range", o.Width, o.Height)
		}
		if o.X < 0 || o.Y < 0 || o.X+o.Width > 3 || o.Y+o.Height > 3 {
			return fmt.Errorf("offset %dx%d at (%d,%d): does not fit the grid", o.Width, o.Height, o.X, o.Y)
		}
	}
	return nil
}

// NewVocabulary builds the configured vocabulary.
func (c *Config) NewVocabulary() (*Vocabulary, error) {
	return NewVocabulary(c.EmptyItem, c.Vocabulary, c.Namespace)
}

// CanonicalOffset returns the answer placement for a pattern size. Sizes with
// no entry sit in the top-left corner.
func (c *Config) CanonicalOffset(width, height int) (int, int) {
	for _, o := range c.Offsets {
		if o.Width == width && o.Height == height {
			return o.X, o.Y
		}
	}
	return 0, 0
}
