package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/curriculum-lint/internal/config"
)

// lessonSpec describes one lesson directory of a fixture module.
type lessonSpec struct {
	dir   string
	title string
}

// navLine builds the footer navigation line for lesson position i.
func navLine(lessons []lessonSpec, i int, indonesian bool) string {
	prevLabel, nextLabel, homeLabel := "Previous", "Next", "Module Home"
	if indonesian {
		prevLabel, nextLabel, homeLabel = "Sebelumnya", "Selanjutnya", "Beranda Modul"
	}

	parts := []string{}
	if i == 0 {
		parts = append(parts, fmt.Sprintf("[← %s: %s](../README.md)", prevLabel, homeLabel))
	} else {
		parts = append(parts, fmt.Sprintf("[← %s: %s](../%s/README.md)", prevLabel, lessons[i-1].title, lessons[i-1].dir))
	}
	parts = append(parts, fmt.Sprintf("[%s](../README.md)", homeLabel))
	if i < len(lessons)-1 {
		parts = append(parts, fmt.Sprintf("[%s: %s →](../%s/README.md)", nextLabel, lessons[i+1].title, lessons[i+1].dir))
	}
	return strings.Join(parts, " | ")
}

// primaryContent renders a fully valid default-language lesson file.
func primaryContent(lessons []lessonSpec, i int) string {
	return fmt.Sprintf(`# %s

[Bahasa Indonesia](README_ID.md)

## Overview

What this lesson covers.

## Learning Objectives

- Understand the topic
- Apply it in practice

## Prerequisites

Basic Rust knowledge.

## Best Practices

Keep accounts small.

## Next Steps

Continue with the next lesson.

## Source Attribution

Adapted from upstream material.

---

%s
`, lessons[i].title, navLine(lessons, i, false))
}

// secondaryContent renders the matching Indonesian file with an identical
// heading level sequence.
func secondaryContent(lessons []lessonSpec, i int) string {
	return fmt.Sprintf(`# %s

[English](README.md)

## Gambaran Umum

Apa yang dibahas pelajaran ini.

## Tujuan Pembelajaran

- Memahami topik
- Menerapkannya dalam praktik

## Prasyarat

Pengetahuan dasar Rust.

## Praktik Terbaik

Jaga akun tetap kecil.

## Langkah Selanjutnya

Lanjutkan ke pelajaran berikutnya.

## Atribusi Sumber

Diadaptasi dari materi sumber.

---

%s
`, lessons[i].title, navLine(lessons, i, true))
}

// writeModule lays out a fixture module with fully valid lessons and
// returns its root.
func writeModule(t *testing.T, lessons []lessonSpec) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"),
		[]byte("# Module\n\n[Bahasa Indonesia](README_ID.md)\n\nIndex of lessons.\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README_ID.md"),
		[]byte("# Modul\n\n[English](README.md)\n\nDaftar pelajaran.\n"), 0644))

	for i, lesson := range lessons {
		dir := filepath.Join(root, lesson.dir)
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(primaryContent(lessons, i)), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README_ID.md"), []byte(secondaryContent(lessons, i)), 0644))
	}
	return root
}

// twoLessons is the standard fixture used across the checker tests.
func twoLessons() []lessonSpec {
	return []lessonSpec{
		{dir: "01-fundamentals", title: "Fundamentals"},
		{dir: "02-ownership-borrowing", title: "Ownership and Borrowing"},
	}
}

// defaultConfig is a shorthand for the built-in configuration.
func defaultConfig() *config.Config {
	return config.Default()
}
