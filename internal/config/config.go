package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
)

// FileName is the workspace configuration file.
const FileName = "dre.yaml"

// DefaultModel is the Gemini model used for the narrative summary.
const DefaultModel = "gemini-2.5-flash"

// Config represents the top-level dre.yaml configuration.
type Config struct {
	Company     CompanyConfig      `yaml:"company"`
	Departments []DepartmentConfig `yaml:"departments" validate:"dive"`
	GroupOrder  map[string]int     `yaml:"group_order,omitempty"`
	Import      ImportConfig       `yaml:"import"`
	Analysis    AnalysisConfig     `yaml:"analysis"`
	Git         GitConfig          `yaml:"git"`
}

// CompanyConfig identifies the business shown in reports and in the narrative prompt.
type CompanyConfig struct {
	Name string `yaml:"name" validate:"required"`
}

// DepartmentConfig is one sector mapping. Sectors sharing a legend form one
// department tab.
type DepartmentConfig struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name" validate:"required"`
	Legend string `yaml:"legend"`
	Order  int    `yaml:"order" validate:"gte=0"`
}

// ImportConfig controls how delimited ledger exports are decoded.
type ImportConfig struct {
	Encoding  string `yaml:"encoding" validate:"oneof=utf-8 latin1"`
	Separator string `yaml:"separator" validate:"len=1"`
}

// AnalysisConfig controls the narrative summary.
type AnalysisConfig struct {
	Model    string `yaml:"model" validate:"required"`
	TopItems int    `yaml:"top_items" validate:"gte=1,lte=50"`
}

// GitConfig controls workspace snapshots. With AutoCommit on, every command
// that changes a workspace under git commits the result.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name" validate:"required_if=AutoCommit true"`
	AuthorEmail string `yaml:"author_email" validate:"omitempty,email"`
}

// Load reads a dre.yaml file from disk and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints and reports every violation at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// DepartmentList converts the configured departments to the model type.
func (c *Config) DepartmentList() []model.Department {
	out := make([]model.Department, len(c.Departments))
	for i, d := range c.Departments {
		out[i] = model.Department{SectorCode: d.Code, SectorName: d.Name, Legend: d.Legend, Order: d.Order}
	}
	return out
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(companyName string) *Config {
	return &Config{
		Company:     CompanyConfig{Name: companyName},
		Departments: DefaultDepartments(),
		Import: ImportConfig{
			Encoding:  "utf-8",
			Separator: ";",
		},
		Analysis: AnalysisConfig{
			Model:    DefaultModel,
			TopItems: 5,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "DRE",
			AuthorEmail: "dre@example.com",
		},
	}
}

// DefaultDepartments returns the dealership sector map new workspaces start with.
func DefaultDepartments() []DepartmentConfig {
	return []DepartmentConfig{
		{Code: "100", Name: "VEICULOS NOVOS", Legend: "C & O", Order: 1},
		{Code: "200", Name: "VEICULOS USADOS", Legend: "Usados", Order: 3},
		{Code: "300", Name: "PEÇAS", Legend: "Peças", Order: 4},
		{Code: "401", Name: "OFICINA MECANICA CAMINHÕES", Legend: "Serviços", Order: 5},
		{Code: "404", Name: "OFICINA ADMINISTRATIVO", Legend: "Serviços", Order: 5},
		{Code: "411", Name: "OFICINA MECANICA VANS", Legend: "Serviços", Order: 5},
		{Code: "500", Name: "ADMINISTRATIVO", Legend: "Administrativo", Order: 7},
		{Code: "700", Name: "BOUTIQUE", Legend: "Collection", Order: 6},
		{Code: "701", Name: "VEICULOS VANS", Legend: "Vans", Order: 2},
		{Code: "100", Name: "VEICULOS CAMINHOES E ONIBUS", Legend: "C & O", Order: 1},
	}
}
