package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"slidedeck/layout"

	"gopkg.in/yaml.v3"
)

// Slide kinds accepted in a deck file.
const (
	KindTitle    = "title"
	KindContent  = "content"
	KindFindings = "findings"
)

// SlideSpec is one entry of the ordered slide list
type SlideSpec struct {
	// title, content or findings
	Kind string `yaml:"kind" json:"kind"`
	// Slide title
	Title string `yaml:"title" json:"title"`
	// Title slides only
	Subtitle string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	// Image file, relative to ImageDir
	Image string `yaml:"image,omitempty" json:"image,omitempty"`
	// Content slides only
	Bullets []string `yaml:"bullets,omitempty" json:"bullets,omitempty"`
	// Bullets left, image right
	TwoColumn bool `yaml:"two_column,omitempty" json:"twoColumn,omitempty"`
	// Findings slides only
	Findings []string `yaml:"findings,omitempty" json:"findings,omitempty"`
}

// PageConfig is the page size in inches
type PageConfig struct {
	WidthIn  float64 `yaml:"width_in" json:"widthIn"`
	HeightIn float64 `yaml:"height_in" json:"heightIn"`
}

// Config structure
type Config struct {
	// Document title property
	Title string `yaml:"title" json:"title"`
	// Document creator property
	Author string `yaml:"author,omitempty" json:"author,omitempty"`
	// Where the .pptx is written
	OutputPath string `yaml:"output" json:"output"`
	// Directory holding chart images
	ImageDir string `yaml:"images" json:"images"`
	// Reopen the saved deck and check it
	Verify bool `yaml:"verify,omitempty" json:"verify,omitempty"`
	// Optional run log directory
	LogDir string      `yaml:"log_dir,omitempty" json:"logDir,omitempty"`
	Page   PageConfig  `yaml:"page" json:"page"`
	Slides []SlideSpec `yaml:"slides" json:"slides"`
}

// Load reads a YAML deck file. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML deck. Missing page dimensions take the wide defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Page.WidthIn == 0 {
		cfg.Page.WidthIn = DefaultPageWidthIn
	}
	if cfg.Page.HeightIn == 0 {
		cfg.Page.HeightIn = DefaultPageHeightIn
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// PageSize returns the page dimensions in EMU.
func (c *Config) PageSize() (width, height layout.EMU) {
	return layout.Inches(c.Page.WidthIn), layout.Inches(c.Page.HeightIn)
}

// Validate reports every problem in the config at once. Slide text is not
// checked; findings beyond the grid surface as out-of-bounds warnings.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.OutputPath) == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	if c.Page.WidthIn <= 0 || c.Page.HeightIn <= 0 {
		errs = append(errs, fmt.Errorf("page size %.3fx%.3f in must be positive", c.Page.WidthIn, c.Page.HeightIn))
	}
	for i, s := range c.Slides {
		switch s.Kind {
		case KindTitle, KindContent, KindFindings:
		default:
			errs = append(errs, fmt.Errorf("slide %d (%q): unknown kind %q", i+1, s.Title, s.Kind))
		}
	}
	return errors.Join(errs...)
}

// LayoutSpecs converts the slide list for the layout engine.
func (c *Config) LayoutSpecs() ([]layout.LayoutSpec, error) {
	specs := make([]layout.LayoutSpec, 0, len(c.Slides))
	for i, s := range c.Slides {
		switch s.Kind {
		case KindTitle:
			specs = append(specs, layout.TitleSpec(s.Title, s.Subtitle))
		case KindContent:
			specs = append(specs, layout.ContentSpec(s.Title, s.Image, s.Bullets, s.TwoColumn))
		case KindFindings:
			specs = append(specs, layout.FindingsSpec(s.Title, s.Findings))
		default:
			return nil, fmt.Errorf("slide %d: unknown kind %q", i+1, s.Kind)
		}
	}
	return specs, nil
}
