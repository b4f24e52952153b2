package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the table configuration file
type Config struct {
	Table TableSettings `hcl:"table,block"`
}

// TableSettings contains table-level configuration
type TableSettings struct {
	Bankroll int   `hcl:"bankroll,optional"`
	MaxSeats int   `hcl:"max_seats,optional"`
	Seed     int64 `hcl:"seed,optional"`
}

// Default returns the default table configuration: $100 bankrolls at a
// five-seat table with a clock-seeded shuffle.
func Default() *Config {
	return &Config{
		Table: TableSettings{
			Bankroll: 100,
			MaxSeats: 5,
		},
	}
}

// Load reads table configuration from an HCL file. A missing file
// yields defaults; a present file has defaults applied field-wise for
// anything it leaves out.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Table.Bankroll == 0 {
		cfg.Table.Bankroll = 100
	}
	if cfg.Table.MaxSeats == 0 {
		cfg.Table.MaxSeats = 5
	}
	return &cfg, nil
}
