package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/osse101/IdleRates_Go/configs"
	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/logger"
	"github.com/osse101/IdleRates_Go/internal/validation"
)

// Catalog bundles the static lookups loaded at startup
type Catalog struct {
	Bonuses    *Bonuses
	Activities *Activities
}

// Loader reads catalogs from a file system and validates them against the embedded schemas
type Loader interface {
	LoadBonuses(ctx context.Context, fsys fs.FS, path string) (*Bonuses, error)
	LoadActivities(ctx context.Context, fsys fs.FS, dir string, maxOutfit int) (*Activities, error)
	Load(ctx context.Context, fsys fs.FS) (*Catalog, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(configs.FS),
	}
}

// LoadDefault loads the catalogs embedded in the binary
func LoadDefault(ctx context.Context) (*Catalog, error) {
	return NewLoader().Load(ctx, configs.FS)
}

// Load reads the bonus catalog and every activity catalog from fsys
func (l *catalogLoader) Load(ctx context.Context, fsys fs.FS) (*Catalog, error) {
	bonuses, err := l.LoadBonuses(ctx, fsys, configs.PathBonuses)
	if err != nil {
		return nil, err
	}

	activities, err := l.LoadActivities(ctx, fsys, configs.DirActivities, bonuses.MaxCount(CategoryOutfit))
	if err != nil {
		return nil, err
	}

	return &Catalog{Bonuses: bonuses, Activities: activities}, nil
}

// LoadBonuses reads and validates the bonus catalog
func (l *catalogLoader) LoadBonuses(ctx context.Context, fsys fs.FS, filePath string) (*Bonuses, error) {
	var config BonusConfig
	if err := l.readValidated(fsys, filePath, configs.SchemaBonuses, &config); err != nil {
		return nil, err
	}

	bonuses, err := NewBonuses(&config)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgBonusesLoaded, "path", filePath, "version", config.Version)
	return bonuses, nil
}

// LoadActivities reads every *.json file in dir as one activity catalog
func (l *catalogLoader) LoadActivities(ctx context.Context, fsys fs.FS, dir string, maxOutfit int) (*Activities, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListActivitiesFailed, err)
	}
	sort.Strings(files)

	defs := make([]domain.Activity, 0, len(files))
	itemCount := 0
	for _, file := range files {
		var def domain.Activity
		if err := l.readValidated(fsys, file, configs.SchemaActivity, &def); err != nil {
			return nil, err
		}
		defs = append(defs, def)
		itemCount += len(def.Items)
	}

	activities, err := NewActivities(defs, maxOutfit)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgActivitiesLoaded, "dir", dir, "activities", len(defs), "items", itemCount)
	return activities, nil
}

func (l *catalogLoader) readValidated(fsys fs.FS, filePath, schemaPath string, target interface{}) error {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return fmt.Errorf(ErrMsgReadConfigFileFailed, filePath, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, schemaPath); err != nil {
		return fmt.Errorf(ErrFmtSchemaFailed, domain.ErrInvalidConfig, filePath, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf(ErrMsgParseConfigFailed, filePath, err)
	}
	return nil
}
