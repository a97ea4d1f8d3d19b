// Package library builds the display-ready digital-library catalog from a
// Google Drive folder of PDFs. Every operation degrades instead of failing:
// a misconfigured or unreachable Drive yields the seed catalog, and a failed
// cover lookup yields a placeholder image for that entry only.
package library

import "fmt"

// PlaceholderCover is served whenever a cover lookup fails or comes back
// empty.
const PlaceholderCover = "/placeholder.svg?height=400&width=300"

// Book is one normalized catalog entry. Title and Author are never empty;
// Rating, when present, lies in [0, 5].
type Book struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Category     string   `json:"category"`
	Cover        string   `json:"cover"`
	PDFURL       string   `json:"pdf_url"`
	FileSize     string   `json:"file_size"`
	LastModified string   `json:"last_modified"`
	DriveFileID  string   `json:"drive_file_id"`
	Description  string   `json:"description,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Pages        *int     `json:"pages,omitempty"`
}

// DirectDownloadLink returns the direct-download URL for a Drive file.
func DirectDownloadLink(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", fileID)
}

// EmbeddablePDFLink returns the embeddable preview URL for a Drive file.
func EmbeddablePDFLink(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", fileID)
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
