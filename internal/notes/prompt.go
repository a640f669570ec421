package notes

import (
	"fmt"
	"strings"
)

const fence = "```"

// %[1]s file name, %[2]s transcript, %[3]s code fence, %[4]s id placeholder.
const promptTemplate = `당신은 전문 강의 요약 노트 작성자입니다. 제공되는 SRT 자막 파일 내용을 분석하여, 주제별로 내용을 정리하고 계층적 구조를 가진 JSON 형식의 요약 노트를 생성해야 합니다.

다음은 '%[1]s' 파일의 타임스탬프가 포함된 자막 내용입니다.
---
%[2]s
---

**요구사항:**
1. **주제별 그룹화:** 전체 자막 내용을 의미적으로 연결되는 여러 'section'으로 나눕니다.
2. **계층 구조:** 각 섹션의 주제에 따라 "level"을 1 또는 2로 설정하여 목차 구조를 만듭니다. (주로 level 1 사용)
3. **제목 (title):** 각 섹션의 핵심 주제를 나타내는 간결하고 명확한 제목을 작성합니다. (예: "🤖 AI 로봇의 활용 예시와 가능성") 적절하게 이모지를 사용해주세요.
4. **내용 (content):** 각 섹션의 핵심 내용을 설명체 문장으로 요약하여 배열에 담습니다. 원문 내용을 바탕으로 자연스럽게 문장을 다듬고, 여러 개의 불릿으로 정리해주세요.
5. **시작 시간 (startTime):** 각 섹션을 구성하는 자막 중 가장 먼저 시작하는 자막의 시간(초)을 "startTime" 값으로 입력합니다.
6. **레이아웃 (layout):** 개념 설명이나 도구 소개 등 정보 나열은 "bulletList"로, 흐름이 있는 서사는 "paragraph"로 지정합니다. "attrs.layout"에도 같은 값을 넣습니다.
7. **고유 ID (attrs.id):** 이 값은 사용되지 않고 나중에 덮어써집니다. 모든 섹션에 "%[4]s"를 그대로 넣으세요.
8. **기타 속성:** "type"은 "section", "attrs.trigger"는 "timeline"으로 고정하고, 아래 예시의 "attrs" 구조를 그대로 따릅니다. "chunkindex"는 생성하지 마세요.
9. 문장과 제목에 역슬래시(\) 문자를 넣지 마세요.

**출력 JSON 형식 예시:**
%[3]sjson
[
  {
    "type": "section",
    "content": [
      "'AI, 나도 할 수 있다'라는 주제로 강의가 시작되며, AI의 개념을 쉽게 이해할 수 있도록 다양한 예시를 함께 살펴봅니다.",
      "AI 로봇은 **물건 정리와 분류**를 스스로 수행하며, 직관적으로 사용할 수 있는 기능을 갖추고 있습니다."
    ],
    "title": "1. 🤖 AI 로봇의 활용 예시와 가능성",
    "level": 1,
    "startTime": 0.0,
    "layout": "bulletList",
    "attrs": {
      "id": "%[4]s",
      "display": "none",
      "color": "",
      "loading": false,
      "layout": "bulletList",
      "trigger": "timeline",
      "sentenceIndices": "",
      "data-value": ""
    }
  }
]
%[3]s

이제 위 요구사항과 예시 형식에 맞춰 JSON 배열을 생성해주세요. JSON 코드 블록만 출력하고 다른 설명은 생략해주세요.`

// BuildPrompt returns the instruction sent to the model for one subtitle file.
// It never fails; an empty transcript still yields a complete instruction.
func BuildPrompt(transcript, fileName string) string {
	return fmt.Sprintf(promptTemplate, fileName, strings.TrimSpace(transcript), fence, PlaceholderID)
}
