package model

// HistoryRecord is one entry of the download history log
type HistoryRecord struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	MediaType MediaType `json:"media_type"`
	FilePath  string    `json:"file_path,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// DisplayValue returns v, or "Unknown" when it is empty
func DisplayValue(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}
