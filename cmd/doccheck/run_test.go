package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// resetFlags restores the package-level flag state between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath = ""
		outputPath = ""
	})
}

func lessonBody(title, crossLink, langSwitch, nav string) string {
	return fmt.Sprintf(`# %s

%s

## Overview

Text.

## Learning Objectives

- One objective

## Prerequisites

Text.

## Common Mistakes

Text.

## Next Steps

Text.

## Source Attribution

Text.

%s

%s
`, title, crossLink, langSwitch, nav)
}

// writeCleanModule lays out a two-lesson module that passes every checker.
func writeCleanModule(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"),
		[]byte("# Module\n\n[Bahasa Indonesia](README_ID.md)\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README_ID.md"),
		[]byte("# Modul\n\n[English](README.md)\n"), 0644))

	lessons := []string{"01-fundamentals", "02-accounts"}
	for i, dir := range lessons {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))

		prev := "[← Previous: Home](../README.md)"
		next := ""
		if i > 0 {
			prev = fmt.Sprintf("[← Previous: Lesson](../%s/README.md)", lessons[i-1])
		}
		if i < len(lessons)-1 {
			next = fmt.Sprintf(" | [Next: Lesson →](../%s/README.md)", lessons[i+1])
		}
		nav := prev + " | [Module Home](../README.md)" + next

		require.NoError(t, os.WriteFile(filepath.Join(root, dir, "README.md"),
			[]byte(lessonBody("Lesson", "Intro paragraph.", "[Bahasa Indonesia](README_ID.md)", nav)), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, dir, "README_ID.md"),
			[]byte(lessonBody("Pelajaran", "Paragraf pembuka.", "[English](README.md)", nav)), 0644))
	}
	return root
}

func TestLoadSetup_RootFromArgument(t *testing.T) {
	resetFlags(t)

	cfg, root, err := loadSetup([]string{"/some/root"})
	require.NoError(t, err)
	assert.Equal(t, "/some/root", root)
	assert.Equal(t, "README.md", cfg.PrimaryFile)
}

func TestLoadSetup_ConfigFile(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()
	configPath = filepath.Join(tmpDir, "doccheck.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"root": "/configured"}`), 0644))

	_, root, err := loadSetup(nil)
	require.NoError(t, err)
	assert.Equal(t, "/configured", root)
}

func TestLoadSetup_BadConfig(t *testing.T) {
	resetFlags(t)
	tmpDir := t.TempDir()
	configPath = filepath.Join(tmpDir, "doccheck.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"primary_file": "README.txt"}`), 0644))

	_, _, err := loadSetup(nil)
	assert.Error(t, err)
}

func TestRunCheckAll_CleanModule(t *testing.T) {
	resetFlags(t)
	root := writeCleanModule(t)

	err := runCheckAll(checkAllCmd, []string{root})
	assert.NoError(t, err)
}

func TestRunCheckAll_BrokenModuleExitsNonZero(t *testing.T) {
	resetFlags(t)
	root := writeCleanModule(t)
	require.NoError(t, os.Remove(filepath.Join(root, "01-fundamentals", "README_ID.md")))

	err := runCheckAll(checkAllCmd, []string{root})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error(s)")
}

func TestRunCheckAll_WritesReportArtifact(t *testing.T) {
	resetFlags(t)
	root := writeCleanModule(t)
	outputPath = filepath.Join(t.TempDir(), "artifacts", "report.json")

	require.NoError(t, runCheckAll(checkAllCmd, []string{root}))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunCheckStructure_MissingRootFails(t *testing.T) {
	resetFlags(t)

	err := runCheckStructure(checkStructureCmd, []string{filepath.Join(t.TempDir(), "absent")})
	assert.Error(t, err)
}

func TestRunCheckFormat_ReportsFormattingOnly(t *testing.T) {
	resetFlags(t)
	root := writeCleanModule(t)
	// Break navigation; the format checker must not care.
	require.NoError(t, os.WriteFile(filepath.Join(root, "01-fundamentals", "README.md"),
		[]byte("# Title\n\n## Section\n\n- fine\n"), 0644))

	err := runCheckFormat(checkFormatCmd, []string{root})
	assert.NoError(t, err)

	err = runCheckNavigation(checkNavigationCmd, []string{root})
	assert.Error(t, err)
}

func TestRunCheckContent_DetectsParityBreak(t *testing.T) {
	resetFlags(t)
	root := writeCleanModule(t)
	path := filepath.Join(root, "02-accounts", "README_ID.md")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(content, []byte("\n## Ekstra\n\nTeks.\n")...), 0644))

	err = runCheckContent(checkContentCmd, []string{root})
	assert.Error(t, err)
}
