package drive

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/option"

	"github.com/sparta-contents/summary-note-maker/internal/logger"
)

// fakeDrive serves the handful of Drive v3 endpoints the client uses.
type fakeDrive struct {
	mu       sync.Mutex
	folders  map[string]string // name -> id
	creates  int
	uploads  []string
	contents map[string][]byte
}

func (f *fakeDrive) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q := r.URL.Query()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/files"):
		if strings.Contains(q.Get("q"), "mimeType = 'application/vnd.google-apps.folder'") {
			var files []map[string]string
			for name, id := range f.folders {
				if strings.Contains(q.Get("q"), "name = '"+name+"'") {
					files = append(files, map[string]string{"id": id})
				}
			}
			json.NewEncoder(w).Encode(map[string]any{"files": files})
			return
		}
		if q.Get("pageToken") == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"nextPageToken": "page-2",
				"files": []map[string]string{
					{"id": "f1", "name": "1-1.srt", "mimeType": "application/x-subrip"},
					{"id": "f2", "name": "readme.txt", "mimeType": "text/plain"},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"files": []map[string]string{
				{"id": "f3", "name": "1-2.SRT", "mimeType": "application/x-subrip"},
			},
		})

	case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/files/") && q.Get("alt") != "media":
		id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		if _, ok := f.contents[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error": {"code": 404, "message": "File not found"}}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":       id,
			"name":     "1-1.srt",
			"mimeType": "application/x-subrip",
			"parents":  []string{"lecture-folder"},
		})

	case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/files/"):
		id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		data, ok := f.contents[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error": {"code": 404, "message": "File not found"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(data)

	case r.Method == http.MethodPost && q.Get("uploadType") != "":
		io.Copy(io.Discard, r.Body)
		id := "up-" + string(rune('0'+len(f.uploads)))
		f.uploads = append(f.uploads, id)
		json.NewEncoder(w).Encode(map[string]string{
			"id":          id,
			"webViewLink": "https://drive.google.com/file/d/" + id + "/view",
		})

	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/files"):
		var body struct {
			Name string `json:"name"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		f.creates++
		id := "folder-" + body.Name
		f.folders[body.Name] = id
		json.NewEncoder(w).Encode(map[string]string{"id": id})

	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func newTestDrive(t *testing.T) (Drive, *fakeDrive) {
	t.Helper()
	t.Setenv("GOOGLE_CREDENTIALS_JSON", "")

	fake := &fakeDrive{
		folders: map[string]string{},
		contents: map[string][]byte{
			"f1": append([]byte{0xEF, 0xBB, 0xBF}, []byte("1\n00:00:01,000 --> 00:00:02,000\n안녕\n")...),
		},
	}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	d, err := New(context.Background(), "", logger.Nop(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d, fake
}

func TestListFilesFollowsPages(t *testing.T) {
	d, _ := newTestDrive(t)

	files, err := d.ListFiles(context.Background(), "root-folder")
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("ListFiles() = %d files, want 3", len(files))
	}
	srt := SubtitleFiles(files)
	if len(srt) != 2 || srt[0].ID != "f1" || srt[1].ID != "f3" {
		t.Errorf("SubtitleFiles() = %+v", srt)
	}
}

func TestDownload(t *testing.T) {
	d, _ := newTestDrive(t)

	content, err := d.Download(context.Background(), "f1")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if content != "1\n00:00:01,000 --> 00:00:02,000\n안녕\n" {
		t.Errorf("Download() = %q", content)
	}

	if _, err := d.Download(context.Background(), "missing"); err == nil {
		t.Error("Download() expected error for missing file")
	}
}

func TestGetFile(t *testing.T) {
	d, _ := newTestDrive(t)

	f, err := d.GetFile(context.Background(), "f1")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}
	if f.ID != "f1" || f.Name != "1-1.srt" || len(f.Parents) != 1 || f.Parents[0] != "lecture-folder" {
		t.Errorf("GetFile() = %+v", f)
	}

	if _, err := d.GetFile(context.Background(), "missing"); err == nil {
		t.Error("GetFile() expected error for missing file")
	}
}

func TestEnsureFolderIsIdempotent(t *testing.T) {
	d, fake := newTestDrive(t)

	first, err := d.EnsureFolder(context.Background(), "parent", "요약노트")
	if err != nil {
		t.Fatalf("EnsureFolder() error = %v", err)
	}
	second, err := d.EnsureFolder(context.Background(), "parent", "요약노트")
	if err != nil {
		t.Fatalf("EnsureFolder() error = %v", err)
	}
	if first != second {
		t.Errorf("EnsureFolder() ids differ: %q vs %q", first, second)
	}
	if fake.creates != 1 {
		t.Errorf("folders created = %d, want 1", fake.creates)
	}
}

func TestUpload(t *testing.T) {
	d, fake := newTestDrive(t)

	link, err := d.Upload(context.Background(), "folder-1", "1-1.json", []byte(`[]`))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if link != "https://drive.google.com/file/d/up-0/view" {
		t.Errorf("Upload() link = %q", link)
	}
	if len(fake.uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(fake.uploads))
	}
}
