package review

import (
	"fmt"
	"strings"
)

type cannedReply struct {
	keyword string
	reply   string
}

// Table order is match priority.
var cannedReplies = []cannedReply{
	{
		keyword: "analyze",
		reply:   "根據教案分析，這份教案包含以下結構：\n1. 教學目標明確定義\n2. 內容組織完整\n3. 教學活動設計合理\n4. 評量方式多元\n\n建議可以加強教學方法的創新性。",
	},
	{
		keyword: "score",
		reply:   "教案品質評估：\n• 教學目標明確性：4.0/5.0\n• 內容組織完整性：4.5/5.0\n• 教學方法創新性：3.5/5.0\n• 評量設計適切性：4.0/5.0\n• 時間規劃合理性：4.0/5.0\n\n總體評分：4.0/5.0",
	},
	{
		keyword: "suggest",
		reply:   "改進建議：\n1. 增加小組討論活動，提升學生互動\n2. 納入更多實例和案例分析\n3. 設計多元評量方式\n4. 考慮差異化教學策略\n5. 加強科技工具的整合",
	},
	{
		keyword: "compare",
		reply:   "教案比較分析：\n請選擇至少兩份教案進行比較。我將從教學目標、內容深度、教學方法、評量設計等維度進行全面比較分析。",
	},
}

const defaultReplyFormat = "我已經分析了您的問題「%s」。基於上傳的教案內容，我可以提供以下見解：\n\n這份教案展現了清晰的教學目標和結構化的內容組織。建議在教學方法上可以增加更多互動元素，以提升學生參與度。"

// ResolveResponse picks the canned reply for userText. Keywords match as
// case-sensitive substrings; the first hit in table order wins.
func ResolveResponse(userText string) string {
	for _, c := range cannedReplies {
		if strings.Contains(userText, c.keyword) {
			return c.reply
		}
	}
	return fmt.Sprintf(defaultReplyFormat, userText)
}

var suggestionPrompts = map[string]string{
	"analyze": "請分析這份教案的整體結構和組織方式",
	"score":   "請評估這份教案的品質並給出各項評分",
	"suggest": "請提供這份教案的具體改進建議",
	"compare": "請比較選定的教案之間的差異",
}

// SuggestionPrompt returns the prefilled chat input for a suggestion chip.
func SuggestionPrompt(action string) (string, error) {
	p, ok := suggestionPrompts[action]
	if !ok {
		return "", fmt.Errorf("%w: unknown suggestion %q", ErrValidationRejected, action)
	}
	return p, nil
}
