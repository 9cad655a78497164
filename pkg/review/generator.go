package review

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

var documentTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type DocumentKind string

const (
	KindSummary DocumentKind = "summary"
	KindRubric  DocumentKind = "rubric"
	KindMindmap DocumentKind = "mindmap"
	KindReport  DocumentKind = "report"
)

var DocumentKinds = []DocumentKind{KindSummary, KindRubric, KindMindmap, KindReport}

var documentTitles = map[DocumentKind]string{
	KindSummary: "教案摘要",
	KindRubric:  "評分量表",
	KindMindmap: "概念圖",
	KindReport:  "評論報告",
}

func ParseDocumentKind(v string) (DocumentKind, error) {
	k := DocumentKind(v)
	if _, ok := documentTitles[k]; !ok {
		return "", fmt.Errorf("%w: unknown document kind %q", ErrValidationRejected, v)
	}
	return k, nil
}

// Document is a rendered report view. Body is an HTML fragment.
type Document struct {
	Kind  DocumentKind `json:"kind"`
	Title string       `json:"title"`
	Body  string       `json:"body"`
}

type rubricRow struct {
	Item, Excellent, Good, NeedsWork string
}

type mindmapBranch struct {
	Name   string
	Leaves []string
}

var rubricRows = []rubricRow{
	{"教學目標", "目標明確具體可評量", "目標清楚但不夠具體", "目標模糊不清"},
	{"內容組織", "結構完整邏輯清晰", "結構尚可稍欠邏輯", "結構鬆散缺乏組織"},
	{"教學方法", "方法多元富創意", "方法適當但較傳統", "方法單一缺乏變化"},
}

var mindmapBranches = []mindmapBranch{
	{"教學目標", []string{"認知目標", "技能目標", "情意目標"}},
	{"教學活動", []string{"引起動機", "發展活動", "綜合活動"}},
	{"評量方式", []string{"形成性評量", "總結性評量", "實作評量"}},
}

// Generate renders one of the fixed documents. At least one source must
// be selected; which ones does not change the output.
func (s *Session) Generate(kind string) (Document, error) {
	k, err := ParseDocumentKind(kind)
	if err != nil {
		return Document{}, err
	}

	s.mu.Lock()
	selected := len(s.selectedLocked())
	total := s.scores.Total()
	s.mu.Unlock()

	if selected == 0 {
		return Document{}, fmt.Errorf("%w: no source selected", ErrPreconditionUnmet)
	}

	var data any
	switch k {
	case KindRubric:
		data = struct{ Rows []rubricRow }{rubricRows}
	case KindMindmap:
		data = struct{ Branches []mindmapBranch }{mindmapBranches}
	case KindReport:
		data = struct{ Total string }{FormatTotal(total)}
	}

	var buf bytes.Buffer
	if err := documentTemplates.ExecuteTemplate(&buf, string(k)+".html", data); err != nil {
		return Document{}, fmt.Errorf("render %s: %w", k, err)
	}
	return Document{Kind: k, Title: documentTitles[k], Body: buf.String()}, nil
}

// FormatTotal prints a total with the fewest digits that round-trip:
// 0, 3.4, 4.
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}
