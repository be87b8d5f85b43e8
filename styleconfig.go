package pathstroke

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StyleConfig is the YAML representation of a stroke style, for loading
// stroke presets from configuration files.
//
// Example document:
//
//	width: 6
//	cap: round
//	join: miter
//	miter_limit: 4
//	dash: [8, 4]
//	dash_offset: 2
type StyleConfig struct {
	Width      float64   `yaml:"width"`
	Cap        string    `yaml:"cap,omitempty"`
	Join       string    `yaml:"join,omitempty"`
	MiterLimit float64   `yaml:"miter_limit,omitempty"`
	Dash       []float64 `yaml:"dash,omitempty"`
	DashOffset float64   `yaml:"dash_offset,omitempty"`
}

// ParseStyle decodes a YAML stroke style document into a Stroke.
// Omitted fields keep their DefaultStroke values.
func ParseStyle(data []byte) (Stroke, error) {
	var cfg StyleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Stroke{}, fmt.Errorf("failed to parse stroke style: %w", err)
	}
	return cfg.Stroke()
}

// LoadStyleFile reads and parses a YAML stroke style file.
func LoadStyleFile(path string) (Stroke, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Stroke{}, fmt.Errorf("failed to read stroke style %s: %w", path, err)
	}
	return ParseStyle(data)
}

// Stroke resolves the configuration into a Stroke value.
func (c StyleConfig) Stroke() (Stroke, error) {
	s := DefaultStroke()

	if c.Width != 0 {
		s.Width = c.Width
	}
	if c.MiterLimit != 0 {
		s.MiterLimit = c.MiterLimit
	}

	if c.Cap != "" {
		lineCap, err := ParseLineCap(c.Cap)
		if err != nil {
			return Stroke{}, err
		}
		s.Cap = lineCap
	}
	if c.Join != "" {
		join, err := ParseLineJoin(c.Join)
		if err != nil {
			return Stroke{}, err
		}
		s.Join = join
	}

	if len(c.Dash) > 0 {
		s.Dash = NewDash(c.Dash...)
		if s.Dash != nil && c.DashOffset != 0 {
			s.Dash = s.Dash.WithOffset(c.DashOffset)
		}
	}

	return s, nil
}

// ParseLineCap parses a cap style name: "butt", "round", or "square".
func ParseLineCap(name string) (LineCap, error) {
	switch name {
	case "butt":
		return LineCapButt, nil
	case "round":
		return LineCapRound, nil
	case "square":
		return LineCapSquare, nil
	default:
		return LineCapButt, fmt.Errorf("unknown line cap %q", name)
	}
}

// ParseLineJoin parses a join style name: "miter", "round", or "bevel".
func ParseLineJoin(name string) (LineJoin, error) {
	switch name {
	case "miter":
		return LineJoinMiter, nil
	case "round":
		return LineJoinRound, nil
	case "bevel":
		return LineJoinBevel, nil
	default:
		return LineJoinMiter, fmt.Errorf("unknown line join %q", name)
	}
}
