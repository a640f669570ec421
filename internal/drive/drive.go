package drive

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/sparta-contents/summary-note-maker/internal/transcript"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	jsonMimeType   = "application/json"
	listPageSize   = 500
)

// ListFiles returns every non-folder file directly inside folderID
func (d *implDrive) ListFiles(ctx context.Context, folderID string) ([]File, error) {
	call := d.service.Files.List().
		Q(listQuery(folderID)).
		Corpora("allDrives").
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		PageSize(listPageSize).
		Fields("nextPageToken, files(id, name, mimeType)")

	var files []File
	err := call.Pages(ctx, func(page *drivev3.FileList) error {
		for _, f := range page.Files {
			files = append(files, File{ID: f.Id, Name: f.Name, MimeType: f.MimeType})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list folder %s: %w", folderID, err)
	}

	d.logger.Debug(ctx, "Listed %d files in folder %s", len(files), folderID)
	return files, nil
}

// GetFile fetches the name, type and parents of one file
func (d *implDrive) GetFile(ctx context.Context, fileID string) (File, error) {
	f, err := d.service.Files.Get(fileID).
		SupportsAllDrives(true).
		Fields("id, name, mimeType, parents").
		Context(ctx).
		Do()
	if err != nil {
		return File{}, fmt.Errorf("get file %s: %w", fileID, err)
	}
	return File{ID: f.Id, Name: f.Name, MimeType: f.MimeType, Parents: f.Parents}, nil
}

// Download fetches a file's content, substituting invalid UTF-8
func (d *implDrive) Download(ctx context.Context, fileID string) (string, error) {
	resp, err := d.service.Files.Get(fileID).
		SupportsAllDrives(true).
		Context(ctx).
		Download()
	if err != nil {
		return "", fmt.Errorf("download %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	content, err := transcript.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", fileID, err)
	}
	return content, nil
}

// EnsureFolder finds the named child folder of parentID or creates it
func (d *implDrive) EnsureFolder(ctx context.Context, parentID, name string) (string, error) {
	found, err := d.service.Files.List().
		Q(folderQuery(parentID, name)).
		Corpora("allDrives").
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		Fields("files(id)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("find folder %q: %w", name, err)
	}
	if len(found.Files) > 0 {
		return found.Files[0].Id, nil
	}

	created, err := d.service.Files.Create(&drivev3.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).
		SupportsAllDrives(true).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create folder %q: %w", name, err)
	}

	d.logger.Info(ctx, "Created folder %q (%s)", name, created.Id)
	return created.Id, nil
}

// Upload stores data as a JSON file in folderID and returns its view link
func (d *implDrive) Upload(ctx context.Context, folderID, name string, data []byte) (string, error) {
	created, err := d.service.Files.Create(&drivev3.File{
		Name:    name,
		Parents: []string{folderID},
	}).
		Media(bytes.NewReader(data), googleapi.ContentType(jsonMimeType)).
		SupportsAllDrives(true).
		Fields("id, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload %q: %w", name, err)
	}
	return created.WebViewLink, nil
}

func listQuery(folderID string) string {
	return fmt.Sprintf("'%s' in parents and trashed = false and mimeType != '%s'", escapeQuery(folderID), folderMimeType)
}

func folderQuery(parentID, name string) string {
	return fmt.Sprintf("name = '%s' and mimeType = '%s' and '%s' in parents and trashed = false",
		escapeQuery(name), folderMimeType, escapeQuery(parentID))
}

// escapeQuery escapes a value for use inside a single-quoted Drive query string.
func escapeQuery(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `'`, `\'`)
}
