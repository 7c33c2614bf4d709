// Package configs embeds the static catalogs shipped with the calculator.
package configs

import "embed"

// FS holds the default catalogs and their JSON schemas
//
//go:embed xp_table.json bonuses.json activities/*.json schemas/*.json
var FS embed.FS

// Catalog paths inside FS (or inside an override directory)
const (
	PathXPTable    = "xp_table.json"
	PathBonuses    = "bonuses.json"
	DirActivities  = "activities"
	SchemaXPTable  = "schemas/xp_table.schema.json"
	SchemaBonuses  = "schemas/bonuses.schema.json"
	SchemaActivity = "schemas/activity.schema.json"
)
