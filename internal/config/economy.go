package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/IdleForge_Go/internal/bonus"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/pricing"
	"github.com/osse101/IdleForge_Go/internal/site"
	"github.com/osse101/IdleForge_Go/internal/validation"
)

var schemas = validation.NewSchemaValidator()

// Economy holds the game tunables; it is loaded once and passed by value into services
type Economy struct {
	Curve pricing.Curve
	Sites site.Kinds
	Bonus bonus.GenerationConfig
}

// economyFile mirrors the YAML layout. Site sections stay as nodes so a
// partial section overrides only the fields it names.
type economyFile struct {
	Curve pricing.Curve                 `yaml:"curve"`
	Sites map[domain.SiteKind]yaml.Node `yaml:"sites"`
	Bonus bonus.GenerationConfig        `yaml:"bonus"`
}

// DefaultEconomy returns the built-in tunables
func DefaultEconomy() Economy {
	return Economy{
		Curve: pricing.DefaultCurve(),
		Sites: site.DefaultKinds(),
		Bonus: bonus.DefaultGenerationConfig(),
	}
}

// LoadEconomy returns the defaults overridden by the YAML file at path; an empty path means defaults
func LoadEconomy(path string) (Economy, error) {
	if path == "" {
		return DefaultEconomy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Economy{}, fmt.Errorf(ErrMsgReadEconomyFile, path, err)
	}
	econ, err := ParseEconomy(data)
	if err != nil {
		return Economy{}, fmt.Errorf(ErrMsgParseEconomyFile, path, err)
	}
	return econ, nil
}

// ParseEconomy checks the document layout against the economy schema, applies
// the overrides to the defaults and validates the result
func ParseEconomy(data []byte) (Economy, error) {
	if err := schemas.ValidateYAML(data, validation.SchemaEconomy); err != nil {
		return Economy{}, err
	}

	def := DefaultEconomy()
	file := economyFile{Curve: def.Curve, Bonus: def.Bonus}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Economy{}, err
	}

	sites := make(site.Kinds, len(def.Sites))
	for kind, cfg := range def.Sites {
		sites[kind] = cfg
	}
	for kind, node := range file.Sites {
		cfg, ok := sites[kind]
		if !ok {
			return Economy{}, fmt.Errorf(ErrMsgUnknownSiteSection, kind)
		}
		if err := node.Decode(&cfg); err != nil {
			return Economy{}, err
		}
		sites[kind] = cfg
	}

	econ := Economy{
		Curve: file.Curve,
		Sites: sites.WithBonusKinds(),
		Bonus: file.Bonus,
	}
	if err := econ.Validate(); err != nil {
		return Economy{}, err
	}
	return econ, nil
}

// Validate checks every tunable against its struct tags
func (e Economy) Validate() error {
	if err := validate.Struct(e.Curve); err != nil {
		return fmt.Errorf(ErrMsgInvalidEconomy, err)
	}
	if err := validate.Struct(e.Bonus); err != nil {
		return fmt.Errorf(ErrMsgInvalidEconomy, err)
	}
	for _, kind := range domain.AllSiteKinds {
		cfg, err := e.Sites.Get(kind)
		if err != nil {
			return fmt.Errorf(ErrMsgInvalidEconomy, err)
		}
		if err := validate.Struct(cfg); err != nil {
			return fmt.Errorf(ErrMsgInvalidEconomy, err)
		}
	}
	return nil
}
