package dto

type LabelScanResponse struct {
	ID        string `json:"id"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	FileURL   string `json:"file_url"`
	Wine      *Wine  `json:"wine"`
	CreatedAt string `json:"created_at"`
}
