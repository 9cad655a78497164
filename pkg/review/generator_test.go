package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RequiresSelection(t *testing.T) {
	s := newTestSession()
	defer s.Close()
	s.Ingest([]FileDescriptor{{Name: "A.pdf"}})

	for _, k := range DocumentKinds {
		t.Run(string(k), func(t *testing.T) {
			_, err := s.Generate(string(k))
			assert.ErrorIs(t, err, ErrPreconditionUnmet)
		})
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	s := newTestSession()
	defer s.Close()
	src := s.Ingest([]FileDescriptor{{Name: "A.pdf"}})
	_, err := s.ToggleSelection(src[0].Id)
	require.NoError(t, err)

	_, err = s.Generate("slides")
	assert.ErrorIs(t, err, ErrValidationRejected)
}

func TestGenerate_EveryKind(t *testing.T) {
	s := newTestSession()
	defer s.Close()
	src := s.Ingest([]FileDescriptor{{Name: "A.pdf"}})
	_, err := s.ToggleSelection(src[0].Id)
	require.NoError(t, err)

	want := map[DocumentKind]string{
		KindSummary: "數學幾何圖形認識",
		KindRubric:  "目標明確具體可評量",
		KindMindmap: "形成性評量",
		KindReport:  "總體評分",
	}
	for _, k := range DocumentKinds {
		doc, err := s.Generate(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, doc.Kind)
		assert.Equal(t, documentTitles[k], doc.Title)
		assert.Contains(t, doc.Body, want[k])
	}
}

func TestGenerate_ReportEmbedsTotal(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	src := s.Ingest([]FileDescriptor{{Name: "A.pdf", MediaType: "application/pdf", SizeBytes: 1024}})
	_, err := s.ToggleSelection(src[0].Id)
	require.NoError(t, err)

	doc, err := s.Generate("report")
	require.NoError(t, err)
	assert.Contains(t, doc.Body, "0/5.0")

	for c, v := range map[string]int{"objectives": 4, "content": 4, "innovation": 3, "assessment": 3, "timing": 3} {
		_, err := s.Rate(c, v)
		require.NoError(t, err)
	}
	doc, err = s.Generate("report")
	require.NoError(t, err)
	assert.Contains(t, doc.Body, "3.4/5.0")
}

func TestGenerate_IgnoresWhichSourcesAreSelected(t *testing.T) {
	s := newTestSession()
	defer s.Close()
	src := s.Ingest([]FileDescriptor{{Name: "A.pdf"}, {Name: "B.docx"}})

	_, err := s.ToggleSelection(src[0].Id)
	require.NoError(t, err)
	first, err := s.Generate("summary")
	require.NoError(t, err)

	_, err = s.ToggleSelection(src[0].Id)
	require.NoError(t, err)
	_, err = s.ToggleSelection(src[1].Id)
	require.NoError(t, err)
	second, err := s.Generate("summary")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "0", FormatTotal(0))
	assert.Equal(t, "3.4", FormatTotal(3.4))
	assert.Equal(t, "4", FormatTotal(4.0))
}
