package review

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngest(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	created := s.Ingest([]FileDescriptor{
		{Name: "數學教案-幾何圖形.pdf", MediaType: "application/pdf", SizeBytes: 512 * 1024},
		{Name: "notes.txt", MediaType: "text/plain", SizeBytes: 12},
	})

	require.Len(t, created, 2)
	assert.Equal(t, "數學教案-幾何圖形.pdf", created[0].Name)
	assert.Equal(t, int64(512*1024), created[0].SizeBytes)
	assert.Equal(t, fixedNow, created[0].UploadedAt)
	assert.False(t, created[0].Selected)
	assert.NotEqual(t, created[0].Id, created[1].Id)
	assert.Equal(t, created, s.Sources())
}

func TestIngest_EmptyBatch(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	assert.Empty(t, s.Ingest(nil))
	assert.Empty(t, s.Sources())
}

func TestToggleSelection_Parity(t *testing.T) {
	for calls := 1; calls <= 6; calls++ {
		s := newTestSession()
		src := s.Ingest([]FileDescriptor{{Name: "A.pdf"}, {Name: "B.pdf"}})

		var last Source
		for i := 0; i < calls; i++ {
			var err error
			last, err = s.ToggleSelection(src[0].Id)
			require.NoError(t, err)
		}

		wantSelected := calls%2 == 1
		assert.Equal(t, wantSelected, last.Selected, "calls=%d", calls)

		selected := s.SelectedSources()
		if wantSelected {
			require.Len(t, selected, 1)
			assert.Equal(t, src[0].Id, selected[0].Id)
		} else {
			assert.Empty(t, selected)
		}
		for _, got := range s.Sources() {
			inSubset := false
			for _, sel := range selected {
				inSubset = inSubset || sel.Id == got.Id
			}
			assert.Equal(t, got.Selected, inSubset)
		}
		s.Close()
	}
}

func TestToggleSelection_UnknownId(t *testing.T) {
	s := newTestSession()
	defer s.Close()
	s.Ingest([]FileDescriptor{{Name: "A.pdf"}})

	_, err := s.ToggleSelection(uuid.New())
	assert.ErrorIs(t, err, ErrLookupMiss)
	assert.Empty(t, s.SelectedSources())
}

func TestSelectedSources_UploadOrder(t *testing.T) {
	s := newTestSession()
	defer s.Close()
	src := s.Ingest([]FileDescriptor{{Name: "A"}, {Name: "B"}, {Name: "C"}})

	for _, i := range []int{2, 0} {
		_, err := s.ToggleSelection(src[i].Id)
		require.NoError(t, err)
	}

	selected := s.SelectedSources()
	require.Len(t, selected, 2)
	assert.Equal(t, "A", selected[0].Name)
	assert.Equal(t, "C", selected[1].Name)
}

func TestSearch(t *testing.T) {
	s := newTestSession()
	defer s.Close()
	s.Ingest([]FileDescriptor{
		{Name: "Geometry-Grade3.PDF"},
		{Name: "reading.docx"},
		{Name: "語文教案-閱讀理解.docx"},
	})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query matches all", "", []string{"Geometry-Grade3.PDF", "reading.docx", "語文教案-閱讀理解.docx"}},
		{"case insensitive", "geometry", []string{"Geometry-Grade3.PDF"}},
		{"upper query", "DOCX", []string{"reading.docx", "語文教案-閱讀理解.docx"}},
		{"cjk substring", "閱讀", []string{"語文教案-閱讀理解.docx"}},
		{"no match", "history", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, src := range s.Search(tt.query) {
				got = append(got, src.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Len(t, s.Sources(), 3)
}
