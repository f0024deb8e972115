package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/curriculum-lint/internal/types"
)

func collectCleanPairs(t *testing.T, root string) []BilingualPair {
	t.Helper()
	pairs, err := CollectPairs(root, defaultConfig())
	require.NoError(t, err)
	return pairs
}

func TestValidateParallelStructure_CleanModule(t *testing.T) {
	root := writeModule(t, twoLessons())

	violations := ValidateParallelStructure(root, collectCleanPairs(t, root))
	assert.Empty(t, violations)
}

func TestValidateParallelStructure_CountMismatch(t *testing.T) {
	root := writeModule(t, twoLessons())
	path := filepath.Join(root, "01-fundamentals", "README_ID.md")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(content, []byte("\n## Bagian Tambahan\n\nTeks.\n")...), 0644))

	violations := ValidateParallelStructure(root, collectCleanPairs(t, root))
	require.Len(t, violations, 1)
	assert.Equal(t, types.CategoryParallelStructure, violations[0].Category)
	assert.Contains(t, violations[0].Message, "heading count mismatch")
}

func TestValidateParallelStructure_LevelMismatch(t *testing.T) {
	root := writeModule(t, twoLessons())
	path := filepath.Join(root, "01-fundamentals", "README_ID.md")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	// Demote one level-2 heading to level 3; counts stay equal.
	patched := strings.Replace(string(content), "## Prasyarat", "### Prasyarat", 1)
	require.NoError(t, os.WriteFile(path, []byte(patched), 0644))

	violations := ValidateParallelStructure(root, collectCleanPairs(t, root))
	require.Len(t, violations, 1)
	assert.Equal(t, types.CategoryParallelStructure, violations[0].Category)
	assert.Equal(t, types.SeverityError, violations[0].Severity)
	// Both languages' heading texts are included for diagnosis.
	assert.Contains(t, violations[0].Message, "Prerequisites")
	assert.Contains(t, violations[0].Message, "Prasyarat")
	require.NotNil(t, violations[0].LineNumber)
}

func TestValidateLanguageLinks_CleanModule(t *testing.T) {
	root := writeModule(t, twoLessons())

	violations := ValidateLanguageLinks(root, collectCleanPairs(t, root), defaultConfig())
	assert.Empty(t, violations)
}

func TestValidateLanguageLinks_MissingBothDirections(t *testing.T) {
	root := writeModule(t, twoLessons())
	dir := filepath.Join(root, "01-fundamentals")
	primary, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	secondary, err := os.ReadFile(filepath.Join(dir, "README_ID.md"))
	require.NoError(t, err)

	patchedPrimary := strings.Replace(string(primary), "[Bahasa Indonesia](README_ID.md)", "no cross link", 1)
	patchedSecondary := strings.Replace(string(secondary), "[English](README.md)", "tanpa tautan", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(patchedPrimary), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README_ID.md"), []byte(patchedSecondary), 0644))

	violations := ValidateLanguageLinks(root, collectCleanPairs(t, root), defaultConfig())
	// Primary missing the alternate reference; secondary missing both the
	// default reference and the language-switch link.
	require.Len(t, violations, 3)
	files := make(map[string]int)
	for _, v := range violations {
		assert.Equal(t, types.CategoryLanguageLink, v.Category)
		files[v.File]++
	}
	assert.Equal(t, 1, files[filepath.Join("01-fundamentals", "README.md")])
	assert.Equal(t, 2, files[filepath.Join("01-fundamentals", "README_ID.md")])
}

func TestValidateLanguageLinks_SwitchMarkerWithoutLink(t *testing.T) {
	root := writeModule(t, twoLessons())
	dir := filepath.Join(root, "01-fundamentals")
	secondary, err := os.ReadFile(filepath.Join(dir, "README_ID.md"))
	require.NoError(t, err)

	// Keep a link back to README.md but drop the language label from its
	// text, so only the switch requirement is unmet.
	patched := strings.Replace(string(secondary), "[English](README.md)", "[Berkas utama](README.md)", 1)
	require.NotEqual(t, string(secondary), patched)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README_ID.md"), []byte(patched), 0644))

	violations := ValidateLanguageLinks(root, collectCleanPairs(t, root), defaultConfig())
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "language-switch")
}

func TestValidateLanguageLinks_NavTargetsDoNotCountAsBackLink(t *testing.T) {
	root := writeModule(t, twoLessons())
	dir := filepath.Join(root, "01-fundamentals")
	secondary, err := os.ReadFile(filepath.Join(dir, "README_ID.md"))
	require.NoError(t, err)

	// The footer navigation still links to ../README.md (the module home).
	// Those targets share the counterpart's basename but live in another
	// directory and must not satisfy the back-link requirement.
	patched := strings.Replace(string(secondary), "[English](README.md)", "tanpa tautan", 1)
	require.NotEqual(t, string(secondary), patched)
	require.Contains(t, patched, "(../README.md)")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README_ID.md"), []byte(patched), 0644))

	violations := ValidateLanguageLinks(root, collectCleanPairs(t, root), defaultConfig())
	require.Len(t, violations, 2)
	messages := []string{violations[0].Message, violations[1].Message}
	assert.Contains(t, strings.Join(messages, "; "), "link back to the default-language file")
	assert.Contains(t, strings.Join(messages, "; "), "language-switch")
}

func lessonPairFiles(pairs []BilingualPair) []string {
	var files []string
	for _, p := range pairs {
		if p.Dir != "." {
			files = append(files, p.PrimaryPath, p.SecondaryPath)
		}
	}
	return files
}

func TestValidateRequiredSections_CleanModule(t *testing.T) {
	root := writeModule(t, twoLessons())

	violations := ValidateRequiredSections(root, lessonPairFiles(collectCleanPairs(t, root)))
	assert.Empty(t, violations)
}

func TestValidateRequiredSections_MissingMandatory(t *testing.T) {
	root := writeModule(t, twoLessons())
	path := filepath.Join(root, "01-fundamentals", "README.md")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	patched := strings.Replace(string(content), "## Source Attribution", "## Credits", 1)
	require.NoError(t, os.WriteFile(path, []byte(patched), 0644))

	violations := ValidateRequiredSections(root, []string{filepath.Join("01-fundamentals", "README.md")})
	require.Len(t, violations, 1)
	assert.Equal(t, types.CategoryRequiredSection, violations[0].Category)
	assert.Contains(t, violations[0].Message, "source-attribution")
}

func TestValidateRequiredSections_EitherGroup(t *testing.T) {
	root := writeModule(t, twoLessons())
	path := filepath.Join(root, "01-fundamentals", "README.md")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	patched := strings.Replace(string(content), "## Best Practices", "## Tips", 1)
	require.NoError(t, os.WriteFile(path, []byte(patched), 0644))

	violations := ValidateRequiredSections(root, []string{filepath.Join("01-fundamentals", "README.md")})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "Best Practices")
	assert.Contains(t, violations[0].Message, "Common Mistakes")
}

func TestValidateRequiredSections_CommonMistakesAlsoSatisfiesGroup(t *testing.T) {
	root := writeModule(t, twoLessons())
	path := filepath.Join(root, "01-fundamentals", "README.md")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	patched := strings.Replace(string(content), "## Best Practices", "## Common Mistakes", 1)
	require.NoError(t, os.WriteFile(path, []byte(patched), 0644))

	violations := ValidateRequiredSections(root, []string{filepath.Join("01-fundamentals", "README.md")})
	assert.Empty(t, violations)
}

func TestValidateRequiredSections_UnreadableFileContinues(t *testing.T) {
	root := writeModule(t, twoLessons())

	files := []string{
		filepath.Join("01-fundamentals", "ABSENT.md"),
		filepath.Join("01-fundamentals", "README.md"),
	}
	violations := ValidateRequiredSections(root, files)
	require.Len(t, violations, 1)
	assert.Equal(t, types.CategoryFileAccess, violations[0].Category)
}
