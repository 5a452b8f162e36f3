package content

import (
	"os"
	"path/filepath"
	"testing"

	"feline-fascination/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Feline Fascination", c.Page.Title)
	assert.Len(t, c.Breeds, 5)
	assert.Len(t, c.Page.Traits, 4)
	assert.NotEmpty(t, c.Facts)
	assert.NotEmpty(t, c.Quiz)
	assert.Equal(t, "Sigmund Freud", c.Page.Quote.Author)
	assert.Equal(t, "Thanks for the love!", c.Page.LikeToast.Title)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded catalog", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Feline Fascination", c.Page.Title)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(minimalCatalog), 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []domain.Fact{"A", "B"}, c.Facts)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read catalog")
	})
}

const minimalCatalog = `
facts: ["A", "B"]
quiz:
  - prompt: Q
    options: [a, b, c, d]
    correct_option: c
`

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantCode domain.ErrorCode
		wantText string
	}{
		{
			name:     "no facts",
			yaml:     "quiz: []\n",
			wantCode: domain.CodeEmptyCatalog,
		},
		{
			name:     "no questions",
			yaml:     "facts: [A]\n",
			wantCode: domain.CodeEmptyCatalog,
		},
		{
			name: "bad question",
			yaml: `
facts: [A]
quiz:
  - prompt: Q
    options: [a, b, c]
    correct_option: a
`,
			wantCode: domain.CodeInvalidQuestion,
		},
		{
			name: "duplicate breed",
			yaml: minimalCatalog + `
breeds:
  - name: Persian
  - name: persian
`,
			wantCode: domain.CodeInvalidInput,
		},
		{
			name:     "unknown key",
			yaml:     minimalCatalog + "colour: blue\n",
			wantText: "failed to decode catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			if tt.wantCode != "" {
				assert.True(t, domain.HasCode(err, tt.wantCode), "got %v", err)
			}
			if tt.wantText != "" {
				assert.ErrorContains(t, err, tt.wantText)
			}
		})
	}
}

func TestCatalog_Breed(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	b, err := c.Breed("maine coon")
	require.NoError(t, err)
	assert.Equal(t, "United States", b.Origin)

	_, err = c.Breed("Sphynx")
	assert.True(t, domain.HasCode(err, domain.CodeBreedNotFound))
}
