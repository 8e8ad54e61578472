package models

// Response is the JSON envelope written by every API endpoint.
// Only the fields relevant to a particular endpoint are populated.
type Response struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message,omitempty"`
	User      *UserInfo      `json:"user,omitempty"`
	Stats     *Stats         `json:"stats,omitempty"`
	Documents []DocumentView `json:"documents,omitempty"`
	Version   string         `json:"version,omitempty"`
}

// DocumentsResponse is the body of GET /api/documents. It is separate from
// [Response] so that an empty library is rendered as "documents": [].
type DocumentsResponse struct {
	Success   bool           `json:"success"`
	Documents []DocumentView `json:"documents"`
}

// Stats is the per user dashboard summary returned by GET /api/stats.
type Stats struct {
	TotalDocuments   int64            `json:"total_documents"`
	FileTypes        map[string]int64 `json:"file_types"`
	Categories       map[string]int64 `json:"categories"`
	TotalStorage     int64            `json:"total_storage"`
	StorageFormatted string           `json:"storage_formatted"`
	RecentDocuments  []RecentDocument `json:"recent_documents"`
}

// RecentDocument is a short document entry listed in [Stats].
type RecentDocument struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
