package drive

import (
	"regexp"
	"strings"
)

var (
	reFolderPath = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)
	reFilePath   = regexp.MustCompile(`/(?:file/)?d/([a-zA-Z0-9_-]+)`)
	reIDParam    = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
	reBareID     = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ExtractFolderID pulls the folder id out of a Drive folder URL. A bare id is
// returned unchanged.
func ExtractFolderID(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if m := reFolderPath.FindStringSubmatch(ref); m != nil {
		return m[1], true
	}
	if m := reIDParam.FindStringSubmatch(ref); m != nil {
		return m[1], true
	}
	if reBareID.MatchString(ref) {
		return ref, true
	}
	return "", false
}

// ExtractFileID pulls the file id out of a Drive file link such as
// /file/d/<id>/view or open?id=<id>. A bare id is returned unchanged.
func ExtractFileID(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if m := reFilePath.FindStringSubmatch(ref); m != nil {
		return m[1], true
	}
	if m := reIDParam.FindStringSubmatch(ref); m != nil {
		return m[1], true
	}
	if reBareID.MatchString(ref) {
		return ref, true
	}
	return "", false
}

// SubtitleFiles keeps the files whose name ends in .srt, ignoring case.
func SubtitleFiles(files []File) []File {
	var out []File
	for _, f := range files {
		if strings.HasSuffix(strings.ToLower(f.Name), ".srt") {
			out = append(out, f)
		}
	}
	return out
}
