package notes

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	transcript := "[1.50s] 안녕하세요\n[62.00s] 두 번째 문장"
	prompt := BuildPrompt(transcript, "1-2.srt")

	for _, want := range []string{
		"'1-2.srt'",
		transcript,
		"```json",
		`"id": "GENERATE_UUID"`,
		`"trigger": "timeline"`,
		`"chunkindex"는 생성하지 마세요`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("BuildPrompt() missing %q", want)
		}
	}
	if strings.Contains(prompt, "%!") {
		t.Errorf("BuildPrompt() has a formatting error: %q", prompt)
	}
}

func TestBuildPromptEmptyTranscript(t *testing.T) {
	prompt := BuildPrompt("", "empty.srt")
	if prompt == "" {
		t.Fatal("BuildPrompt() returned empty string")
	}
	if !strings.Contains(prompt, "---\n\n---") {
		t.Errorf("BuildPrompt() should embed an empty transcript block")
	}
}

func TestBuildPromptPercentInTranscript(t *testing.T) {
	prompt := BuildPrompt("[0.00s] 100% 완료", "a%d.srt")
	if !strings.Contains(prompt, "100% 완료") || !strings.Contains(prompt, "'a%d.srt'") {
		t.Errorf("BuildPrompt() altered percent signs")
	}
}
