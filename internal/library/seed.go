package library

// SeedCatalog returns the fixed fallback catalog served when Drive is not
// configured or the listing call fails. Rendering something generic beats
// rendering an error on a public page.
func SeedCatalog() []Book {
	return []Book{
		{
			ID:           "1",
			Title:        "Alan Turing's Automatic Computing Engine",
			Author:       "B. Jack Copeland",
			Category:     "Computer Science",
			Cover:        "https://covers.openlibrary.org/b/isbn/9780198565932-L.jpg",
			PDFURL:       "https://drive.google.com/file/d/1iyXws8WNTrCVTXH3Do7Mr1LzfIxPK6po/view",
			FileSize:     "3.9 MB",
			LastModified: "Mar 20, 2019",
			DriveFileID:  "mock-1",
			Description:  "A comprehensive exploration of Alan Turing's groundbreaking work on automatic computing machines and their theoretical foundations.",
			Rating:       floatPtr(4.8),
			Pages:        intPtr(580),
		},
		{
			ID:           "2",
			Title:        "Python Programming Examples",
			Author:       "Various Authors",
			Category:     "Programming",
			Cover:        "https://covers.openlibrary.org/b/isbn/9781593279288-L.jpg",
			PDFURL:       "https://drive.google.com/file/d/1iyXws8WNTrCVTXH3Do7Mr1LzfIxPK6po/view",
			FileSize:     "2.1 MB",
			LastModified: "Oct 11, 2021",
			DriveFileID:  "mock-2",
			Description:  "A collection of practical Python programming examples covering various concepts and applications.",
			Rating:       floatPtr(4.5),
			Pages:        intPtr(320),
		},
		{
			ID:           "3",
			Title:        "The Computer and the Brain",
			Author:       "John von Neumann",
			Category:     "Computer Science",
			Cover:        "https://covers.openlibrary.org/b/isbn/9780300181111-L.jpg",
			PDFURL:       "https://drive.google.com/file/d/1iyXws8WNTrCVTXH3Do7Mr1LzfIxPK6po/view",
			FileSize:     "808 KB",
			LastModified: "Aug 23, 2021",
			DriveFileID:  "mock-3",
			Description:  "Von Neumann's influential work comparing the functioning of computers and the human brain, laying groundwork for modern computing theory.",
			Rating:       floatPtr(4.9),
			Pages:        intPtr(82),
		},
	}
}
