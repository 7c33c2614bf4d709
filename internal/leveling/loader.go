package leveling

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/osse101/IdleRates_Go/configs"
	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/logger"
	"github.com/osse101/IdleRates_Go/internal/validation"
)

// Config represents the JSON level table
type Config struct {
	Version     string     `json:"version"`
	Description string     `json:"description"`
	Levels      []LevelDef `json:"levels"`
}

// LevelDef is one row of the level table
type LevelDef struct {
	Level int   `json:"level"`
	XP    int64 `json:"xp"`
}

// Loader reads the level table from a file system
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a loader validating against the embedded schemas
func NewLoader() *Loader {
	return &Loader{
		schemaValidator: validation.NewSchemaValidator(configs.FS),
	}
}

// Load reads, validates and builds the table at path inside fsys
func (l *Loader) Load(ctx context.Context, fsys fs.FS, path string) (*Table, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTableFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, configs.SchemaXPTable); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTableFailed, err)
	}

	thresholds, err := config.thresholds()
	if err != nil {
		return nil, err
	}

	table, err := NewTable(thresholds)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgTableLoaded, "path", path, "levels", len(thresholds))
	return table, nil
}

// thresholds converts the rows to a dense slice, rejecting gaps and reordering.
// The true master row is carried by TrueMasterXP and skipped here.
func (c *Config) thresholds() ([]int64, error) {
	out := make([]int64, 0, len(c.Levels))
	for _, row := range c.Levels {
		if row.Level == domain.TrueMasterLevel {
			continue
		}
		expected := len(out) + 1
		if row.Level != expected {
			return nil, fmt.Errorf(ErrFmtLevelGap, domain.ErrInvalidConfig, expected, row.Level)
		}
		out = append(out, row.XP)
	}
	return out, nil
}

// LoadDefault loads the embedded level table
func LoadDefault(ctx context.Context) (*Table, error) {
	return NewLoader().Load(ctx, configs.FS, configs.PathXPTable)
}
