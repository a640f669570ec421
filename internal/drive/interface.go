package drive

import "context"

// Drive is the subset of Google Drive the note maker needs
type Drive interface {
	// ListFiles returns the non-folder, non-trashed children of a folder.
	ListFiles(ctx context.Context, folderID string) ([]File, error)
	// GetFile returns the metadata of one file.
	GetFile(ctx context.Context, fileID string) (File, error)
	// Download returns the file content decoded as UTF-8.
	Download(ctx context.Context, fileID string) (string, error)
	// EnsureFolder returns the id of the named child folder, creating it if absent.
	EnsureFolder(ctx context.Context, parentID, name string) (string, error)
	// Upload stores JSON bytes as a new file and returns its web view link.
	Upload(ctx context.Context, folderID, name string, data []byte) (string, error)
}

// File is one entry of a folder listing
type File struct {
	ID       string
	Name     string
	MimeType string
	// Parents is only filled by GetFile.
	Parents []string
}
