package library

import (
	"context"
	"errors"
	"testing"
	"time"

	"contenthub/internal/platform/drive"
	"contenthub/internal/platform/openlibrary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDriveClient struct {
	mock.Mock
}

func (m *mockDriveClient) ListFiles(ctx context.Context, folderID string) ([]drive.File, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]drive.File), args.Error(1)
}

type mockCoverClient struct {
	mock.Mock
}

func (m *mockCoverClient) Search(ctx context.Context, query string, limit int) (*openlibrary.SearchResponse, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*openlibrary.SearchResponse), args.Error(1)
}

func searchResult(coverID int) *openlibrary.SearchResponse {
	return &openlibrary.SearchResponse{
		NumFound: 1,
		Docs:     []openlibrary.SearchDoc{{CoverID: coverID}},
	}
}

func driveFile(id, name string) drive.File {
	return drive.File{
		ID:             id,
		Name:           name,
		MimeType:       drive.MimePDF,
		Size:           1536,
		ModifiedTime:   time.Date(2021, time.October, 11, 0, 0, 0, 0, time.UTC),
		WebContentLink: "https://drive.google.com/uc?id=" + id,
	}
}

func TestFetchFallsBackWhenUnconfigured(t *testing.T) {
	driveClient := new(mockDriveClient)
	covers := new(mockCoverClient)
	svc := NewService(driveClient, covers, Config{})

	books := svc.Fetch(context.Background())

	assert.Equal(t, SeedCatalog(), books)
	driveClient.AssertNotCalled(t, "ListFiles", mock.Anything, mock.Anything)
}

func TestFetchFallsBackOnListingError(t *testing.T) {
	driveClient := new(mockDriveClient)
	covers := new(mockCoverClient)
	driveClient.On("ListFiles", mock.Anything, "folder-1").Return(nil, errors.New("transport error"))

	svc := NewService(driveClient, covers, Config{APIKey: "key", FolderID: "folder-1"})
	books := svc.Fetch(context.Background())

	assert.Equal(t, SeedCatalog(), books)
	covers.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestFetchFiltersNonPDFEntries(t *testing.T) {
	driveClient := new(mockDriveClient)
	covers := new(mockCoverClient)

	image := driveFile("img", "cover.jpg")
	image.MimeType = "image/jpeg"
	driveClient.On("ListFiles", mock.Anything, "folder-1").Return([]drive.File{
		driveFile("f1", "go_in_practice.pdf"),
		image,
	}, nil)
	covers.On("Search", mock.Anything, mock.Anything, 1).Return(searchResult(42), nil)

	svc := NewService(driveClient, covers, Config{APIKey: "key", FolderID: "folder-1"})
	books := svc.Fetch(context.Background())

	require.Len(t, books, 1)
	assert.Equal(t, "f1", books[0].ID)
}

func TestFetchIsolatesCoverFailures(t *testing.T) {
	driveClient := new(mockDriveClient)
	covers := new(mockCoverClient)

	driveClient.On("ListFiles", mock.Anything, "folder-1").Return([]drive.File{
		driveFile("f1", "first_book_one_Adams.pdf"),
		driveFile("f2", "second_book_two_Brown.pdf"),
		driveFile("f3", "third_book_three_Clark.pdf"),
	}, nil)
	covers.On("Search", mock.Anything, "first book one Adams", 1).Return(searchResult(11), nil)
	covers.On("Search", mock.Anything, "second book two Brown", 1).Return(nil, errors.New("timeout"))
	covers.On("Search", mock.Anything, "third book three Clark", 1).Return(searchResult(33), nil)

	svc := NewService(driveClient, covers, Config{APIKey: "key", FolderID: "folder-1"})
	books := svc.Fetch(context.Background())

	require.Len(t, books, 3)

	// Output keeps listing order regardless of completion order.
	assert.Equal(t, []string{"f1", "f2", "f3"}, []string{books[0].ID, books[1].ID, books[2].ID})

	assert.Equal(t, openlibrary.CoverURL(11), books[0].Cover)
	assert.Equal(t, PlaceholderCover, books[1].Cover)
	assert.Equal(t, openlibrary.CoverURL(33), books[2].Cover)
}

func TestFetchEntryAssembly(t *testing.T) {
	driveClient := new(mockDriveClient)
	covers := new(mockCoverClient)

	driveClient.On("ListFiles", mock.Anything, "folder-1").Return([]drive.File{
		driveFile("f1", "notes_on_things_Doe.pdf"),
	}, nil)
	covers.On("Search", mock.Anything, mock.Anything, 1).Return(searchResult(0), nil)

	svc := NewService(driveClient, covers, Config{APIKey: "key", FolderID: "folder-1"})
	books := svc.Fetch(context.Background())

	require.Len(t, books, 1)
	b := books[0]
	assert.Equal(t, "notes on things", b.Title)
	assert.Equal(t, "Doe", b.Author)
	assert.Equal(t, "General", b.Category)
	assert.Equal(t, PlaceholderCover, b.Cover, "zero cover id means no usable cover")
	assert.Equal(t, "1.5 KB", b.FileSize)
	assert.Equal(t, "Oct 11, 2021", b.LastModified)
	assert.Equal(t, "https://drive.google.com/uc?id=f1", b.PDFURL)
	assert.Equal(t, "A comprehensive book on general", b.Description)
	assert.Nil(t, b.Rating, "generic entries carry no rating by default")
	assert.Nil(t, b.Pages)
}

func TestFetchDemoRatings(t *testing.T) {
	driveClient := new(mockDriveClient)
	covers := new(mockCoverClient)

	driveClient.On("ListFiles", mock.Anything, "folder-1").Return([]drive.File{
		driveFile("f1", "notes_on_things_Doe.pdf"),
	}, nil)
	covers.On("Search", mock.Anything, mock.Anything, 1).Return(nil, errors.New("down"))

	svc := NewService(driveClient, covers, Config{APIKey: "key", FolderID: "folder-1", DemoRatings: true})
	books := svc.Fetch(context.Background())

	require.Len(t, books, 1)
	if assert.NotNil(t, books[0].Rating) {
		assert.GreaterOrEqual(t, *books[0].Rating, 3.0)
		assert.LessOrEqual(t, *books[0].Rating, 5.0)
	}
}

func TestLinkHelpers(t *testing.T) {
	assert.Equal(t, "https://drive.google.com/uc?export=download&id=abc", DirectDownloadLink("abc"))
	assert.Equal(t, "https://drive.google.com/file/d/abc/preview", EmbeddablePDFLink("abc"))
}
