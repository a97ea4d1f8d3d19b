package library

import (
	"context"
	"log"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"contenthub/internal/platform/drive"
	"contenthub/internal/platform/openlibrary"
)

// DriveClient lists the files of one Drive folder.
type DriveClient interface {
	ListFiles(ctx context.Context, folderID string) ([]drive.File, error)
}

// CoverClient searches Open Library for cover identifiers.
type CoverClient interface {
	Search(ctx context.Context, query string, limit int) (*openlibrary.SearchResponse, error)
}

type Config struct {
	// APIKey and FolderID configure the Drive listing. When either is
	// empty the service serves the seed catalog without any network call.
	APIKey   string
	FolderID string
	// CoverTimeout bounds each per-entry cover lookup so one stalled call
	// cannot hold up the whole catalog. Defaults to 5s.
	CoverTimeout time.Duration
	// DemoRatings injects a randomized 3.0-5.0 rating into generically
	// parsed entries. Off by default; curated entries keep their curated
	// rating either way.
	DemoRatings bool
}

// Service is the catalog importer. Fetch never returns an error.
type Service struct {
	drive  DriveClient
	covers CoverClient
	cfg    Config
}

func NewService(driveClient DriveClient, covers CoverClient, cfg Config) *Service {
	if cfg.CoverTimeout <= 0 {
		cfg.CoverTimeout = 5 * time.Second
	}
	return &Service{drive: driveClient, covers: covers, cfg: cfg}
}

// Fetch lists the configured Drive folder and returns one Book per PDF,
// enriched concurrently. Output order matches the filtered listing order.
// Any whole-listing failure falls back to the seed catalog.
func (s *Service) Fetch(ctx context.Context) []Book {
	if s.cfg.APIKey == "" || s.cfg.FolderID == "" {
		log.Println("google drive not configured, serving seed catalog")
		return SeedCatalog()
	}

	files, err := s.drive.ListFiles(ctx, s.cfg.FolderID)
	if err != nil {
		log.Printf("drive listing failed, serving seed catalog: %v", err)
		return SeedCatalog()
	}

	var pdfs []drive.File
	for _, f := range files {
		if f.MimeType == drive.MimePDF {
			pdfs = append(pdfs, f)
		}
	}

	books := make([]Book, len(pdfs))
	var wg sync.WaitGroup
	for i, f := range pdfs {
		wg.Add(1)
		go func(i int, f drive.File) {
			defer wg.Done()
			books[i] = s.buildBook(ctx, f)
		}(i, f)
	}
	wg.Wait()

	return books
}

func (s *Service) buildBook(ctx context.Context, f drive.File) Book {
	meta := parseBookInfo(f.Name)

	b := Book{
		ID:           f.ID,
		Title:        meta.Title,
		Author:       meta.Author,
		Category:     meta.Category,
		Cover:        s.lookupCover(ctx, meta.Title, meta.Author),
		PDFURL:       f.WebContentLink,
		FileSize:     FormatFileSize(f.Size),
		LastModified: formatModified(f.ModifiedTime),
		DriveFileID:  f.ID,
		Description:  "A comprehensive book on " + strings.ToLower(meta.Category),
		Rating:       meta.Rating,
		Pages:        meta.Pages,
	}
	if b.Rating == nil && s.cfg.DemoRatings {
		b.Rating = floatPtr(math.Round((rand.Float64()*2+3)*10) / 10)
	}
	return b
}

// lookupCover is best effort: any error, timeout or empty result yields the
// placeholder, isolated to the one entry being built.
func (s *Service) lookupCover(ctx context.Context, title, author string) string {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.CoverTimeout)
	defer cancel()

	res, err := s.covers.Search(ctx, title+" "+author, 1)
	if err != nil {
		log.Printf("cover lookup failed for %q: %v", title, err)
		return PlaceholderCover
	}
	if res == nil || len(res.Docs) == 0 || res.Docs[0].CoverID == 0 {
		return PlaceholderCover
	}
	return openlibrary.CoverURL(res.Docs[0].CoverID)
}
