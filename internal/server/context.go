package server

// ServerContext holds shared dependencies for MCP tool handlers.
type ServerContext struct {
	CatalogDir string // external exercise packs directory (optional)
	OutputDir  string
	Metrics    *Metrics // nil disables metrics
}
