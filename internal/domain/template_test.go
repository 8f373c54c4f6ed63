package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	valid := []struct {
		input string
		want  Placeholder
	}{
		{"{id}", PlaceholderID},
		{"{s}", PlaceholderSubstitution},
		{"file_{id}.txt", PlaceholderID},
		{"owner_{s}.dat", PlaceholderSubstitution},
		{"{id}.jpg", PlaceholderID},
		{"IMG-{s}", PlaceholderSubstitution},
		{"ünï_{id}_cödé", PlaceholderID},
	}
	for _, tt := range valid {
		t.Run(tt.input, func(t *testing.T) {
			tmpl, err := ParseTemplate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tmpl.Placeholder())
			assert.Equal(t, tt.input, tmpl.String())
		})
	}

	invalid := []string{
		"",
		"plain.txt",
		"foo{bar}.txt",
		"{ID}",
		"{id}{id}",
		"{id}_{s}",
		"my file_{id}",
		"file_{id} .txt",
		"file\t{s}",
		"{{id}}",
		"file_{id}}",
		"{id",
		"id}",
		"{ id }",
		"a\u00a0{id}",
		"x\v{id}",
		"a\u3000{s}",
		"\u2003{s}",
		"{id}\u2028",
	}
	for _, input := range invalid {
		t.Run(fmt.Sprintf("rejects %q", input), func(t *testing.T) {
			_, err := ParseTemplate(input)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestTemplate_Expand(t *testing.T) {
	t.Run("index is one-based", func(t *testing.T) {
		tmpl, err := ParseTemplate("file_{id}.txt")
		require.NoError(t, err)
		assert.Equal(t, "file_1.txt", tmpl.ExpandIndex(0, 0))
		assert.Equal(t, "file_12.txt", tmpl.ExpandIndex(11, 0))
	})

	t.Run("zero-padded index", func(t *testing.T) {
		tmpl, err := ParseTemplate("IMG_{id}")
		require.NoError(t, err)
		assert.Equal(t, "IMG_005", tmpl.ExpandIndex(4, 3))
		assert.Equal(t, "IMG_1234", tmpl.ExpandIndex(1233, 3), "width is a minimum")
	})

	t.Run("line substituted verbatim", func(t *testing.T) {
		tmpl, err := ParseTemplate("owner_{s}.dat")
		require.NoError(t, err)
		assert.Equal(t, "owner_alice.dat", tmpl.ExpandLine("alice", CaseNone))
		assert.Equal(t, "owner_.dat", tmpl.ExpandLine("", CaseNone))
	})

	t.Run("line with placeholder text is not re-expanded", func(t *testing.T) {
		tmpl, err := ParseTemplate("{s}_x")
		require.NoError(t, err)
		assert.Equal(t, "{s}_x", tmpl.ExpandLine("{s}", CaseNone))
	})

	t.Run("case transforms", func(t *testing.T) {
		tmpl, err := ParseTemplate("{s}.txt")
		require.NoError(t, err)
		assert.Equal(t, "BOB SMITH.txt", tmpl.ExpandLine("bob smith", CaseUpper))
		assert.Equal(t, "bob smith.txt", tmpl.ExpandLine("Bob SMITH", CaseLower))
		assert.Equal(t, "Bob Smith.txt", tmpl.ExpandLine("bob smith", CaseTitle))
	})
}

func TestParseOptions(t *testing.T) {
	t.Run("sort order", func(t *testing.T) {
		got, err := ParseSortOrder("")
		require.NoError(t, err)
		assert.Equal(t, SortLexical, got)

		got, err = ParseSortOrder("natural")
		require.NoError(t, err)
		assert.Equal(t, SortNatural, got)

		_, err = ParseSortOrder("random")
		assert.ErrorIs(t, err, ErrInvalidOption)
	})

	t.Run("case", func(t *testing.T) {
		got, err := ParseCase("title")
		require.NoError(t, err)
		assert.Equal(t, CaseTitle, got)

		_, err = ParseCase("camel")
		assert.ErrorIs(t, err, ErrInvalidOption)
	})
}
