package request

// ExportRequest triggers a receipt export for the session.
type ExportRequest struct {
	Format    string `json:"format"`     // "jpg" (default) or "pdf"
	Model     string `json:"model"`      // "1" (default) or "2"
	StationID string `json:"station_id"` // optional; falls back to the session's selection
}
