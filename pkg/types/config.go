package types

// ServerConfig holds settings for the MCP query server.
type ServerConfig struct {
	// IndexPath is the directory of per-topic reference files.
	IndexPath string `json:"index_path" yaml:"index_path" mapstructure:"index_path"`

	// LogLevel is one of debug, info, warn, error (default info).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// OutputFormat selects the file format written by export and scan.
type OutputFormat string

const (
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// ExportConfig holds settings for writing the catalog to disk.
type ExportConfig struct {
	// OutputPath is the directory the catalog files are written to.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// Format selects yaml or json.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// ScanConfig holds settings for the transcript keyword scan.
type ScanConfig struct {
	// TranscriptsPath contains one directory per episode, each holding
	// transcript.md.
	TranscriptsPath string `json:"transcripts_path" yaml:"transcripts_path" mapstructure:"transcripts_path"`

	// OutputPath is the directory the scan report is written to.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// MinMentions is the number of matching sentences a framework keyword
	// must exceed before it is reported (default 2).
	MinMentions int `json:"min_mentions" yaml:"min_mentions" mapstructure:"min_mentions"`

	// Format selects yaml or json for the report.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}
