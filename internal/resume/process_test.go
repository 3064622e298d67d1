package resume

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	ex := NewExtractor(ExtractorOptions{})

	testCases := []struct {
		name        string
		data        []byte
		contentType string
		want        []string
		wantKind    ErrorKind
	}{
		{
			name:        "plain text",
			data:        []byte("Jane Doe\nSkills:\n- Go\n- Rust\n- Kubernetes"),
			contentType: "text/plain; charset=utf-8",
			want:        []string{"Go", "Rust", "Kubernetes"},
		},
		{
			name:        "pdf",
			data:        buildPDF(t, []string{"Jane Doe"}, []string{"Skills: Go - Rust - Kubernetes"}),
			contentType: MimePDF,
			want:        []string{"Go", "Rust", "Kubernetes"},
		},
		{
			name:        "docx",
			data:        buildDocx(t, paragraph("Skills:")+paragraph("• Python")+paragraph("• SQL"), true),
			contentType: MimeDOCX,
			want:        []string{"Python", "SQL"},
		},
		{
			name:        "legacy doc takes the docx path",
			data:        []byte("\xd0\xcf\x11\xe0\xa1\xb1\x1a\xe1"),
			contentType: MimeDOC,
			wantKind:    CorruptDocument,
		},
		{
			name:        "unsupported type",
			data:        []byte("\x89PNG\r\n\x1a\n"),
			contentType: "image/png",
			wantKind:    UnsupportedFormat,
		},
		{
			name:        "missing section",
			data:        []byte("Jane Doe\nExperience: ten years"),
			contentType: MimePlainText,
			wantKind:    SectionNotFound,
		},
		{
			name:        "empty section",
			data:        []byte("Skills:"),
			contentType: MimePlainText,
			want:        []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Process(ex, nil, tc.data, tc.contentType)
			if tc.wantKind != KindNone {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, KindOf(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProcessIdempotent(t *testing.T) {
	data := []byte("Summary\nSkills: Python • SQL - Docker\n- Terraform")
	first, err := Process(nil, nil, data, MimePlainText)
	require.NoError(t, err)
	second, err := Process(nil, nil, data, MimePlainText)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Python", "SQL", "Docker", "Terraform"}, first)
}

func TestProcessConcurrent(t *testing.T) {
	ex := NewExtractor(ExtractorOptions{})
	p := NewParser(ParserOptions{})
	errs := make(chan error, 16)
	for i := 0; i < cap(errs); i++ {
		go func(i int) {
			want := fmt.Sprintf("Skill%02d", i)
			got, err := Process(ex, p, []byte("Skills:\n- "+want), MimePlainText)
			if err == nil && (len(got) != 1 || got[0] != want) {
				err = fmt.Errorf("got %v, want [%s]", got, want)
			}
			errs <- err
		}(i)
	}
	for i := 0; i < cap(errs); i++ {
		assert.NoError(t, <-errs)
	}
}
