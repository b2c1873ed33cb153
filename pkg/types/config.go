package types

// BuildConfig holds settings for the build command.
type BuildConfig struct {
	// OutputDir is the directory generated documents are written to
	// (default "."). Ignored when an explicit output path is absolute.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// FilePrefix is the stem of generated filenames (default "documento").
	FilePrefix string `json:"file_prefix" yaml:"file_prefix"`

	// CatalogDir is the directory holding the build catalog database.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// DisableCatalog skips recording the build in the catalog.
	DisableCatalog bool `json:"disable_catalog" yaml:"disable_catalog"`
}

// CatalogConfig holds settings for the build catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding syllabus.db.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default number of entries listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default "info").
	Level string `json:"level" yaml:"level"`

	// Format selects the slog handler: text or json (default "text").
	Format string `json:"format" yaml:"format"`
}
