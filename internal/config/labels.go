package config

import "strings"

// Canonical section identifiers. Lesson files must carry the mandatory set
// in either language; localized spellings live in the label table below so
// adding a language is a data change, not a code change.
const (
	SectionOverview           = "overview"
	SectionLearningObjectives = "learning-objectives"
	SectionPrerequisites      = "prerequisites"
	SectionNextSteps          = "next-steps"
	SectionSourceAttribution  = "source-attribution"
	SectionBestPractices      = "best-practices"
	SectionCommonMistakes     = "common-mistakes"
)

// Canonical navigation link identifiers.
const (
	NavPrevious   = "previous"
	NavNext       = "next"
	NavModuleHome = "module-home"
)

// sectionLabels maps canonical section identifiers to their accepted
// localized heading texts (English and Indonesian).
var sectionLabels = map[string][]string{
	SectionOverview:           {"Overview", "Gambaran Umum"},
	SectionLearningObjectives: {"Learning Objectives", "Tujuan Pembelajaran"},
	SectionPrerequisites:      {"Prerequisites", "Prasyarat"},
	SectionNextSteps:          {"Next Steps", "Langkah Selanjutnya"},
	SectionSourceAttribution:  {"Source Attribution", "Atribusi Sumber"},
	SectionBestPractices:      {"Best Practices", "Praktik Terbaik"},
	SectionCommonMistakes:     {"Common Mistakes", "Kesalahan Umum"},
}

// navLabels maps canonical navigation identifiers to the accepted
// localized link-text labels.
var navLabels = map[string][]string{
	NavPrevious:   {"Previous", "Sebelumnya"},
	NavNext:       {"Next", "Selanjutnya", "Berikutnya"},
	NavModuleHome: {"Module Home", "Beranda Modul", "Kembali ke Modul"},
}

// languageSwitchLabels are the link texts recognized as a language switch.
var languageSwitchLabels = []string{"English", "Bahasa Indonesia"}

// MatchLanguageLabel reports whether a link text names one of the known
// languages, i.e. serves as a language-switch link.
func MatchLanguageLabel(linkText string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(linkText))
	for _, label := range languageSwitchLabels {
		if cleaned == strings.ToLower(label) {
			return true
		}
	}
	return false
}

// MandatorySections are required in every lesson file.
var MandatorySections = []string{
	SectionOverview,
	SectionLearningObjectives,
	SectionPrerequisites,
	SectionNextSteps,
	SectionSourceAttribution,
}

// EitherSections is a group of which at least one must be present.
var EitherSections = []string{
	SectionBestPractices,
	SectionCommonMistakes,
}

// SectionLabels returns the accepted localized labels for a canonical
// section identifier, or nil for an unknown identifier.
func SectionLabels(id string) []string {
	return sectionLabels[id]
}

// NavLabels returns the accepted localized labels for a canonical
// navigation identifier, or nil for an unknown identifier.
func NavLabels(id string) []string {
	return navLabels[id]
}

// MatchSection resolves a heading text to a canonical section identifier.
// Matching is case-insensitive and tolerates a trailing colon; leading
// decoration (emoji, numbering) is not stripped, matching the source
// corpus where section headings are plain labels.
func MatchSection(headingText string) (string, bool) {
	normalized := normalizeLabel(headingText)
	for id, labels := range sectionLabels {
		for _, label := range labels {
			if normalized == normalizeLabel(label) {
				return id, true
			}
		}
	}
	return "", false
}

// MatchNavLabel resolves a navigation link text to a canonical identifier.
// Link texts usually carry arrows and a trailing lesson title, e.g.
// "← Previous: Accounts", so the label is matched as a prefix of the
// cleaned text.
func MatchNavLabel(linkText string) (string, bool) {
	cleaned := strings.TrimLeft(linkText, "←→⬅➡⏮⏭ \t")
	cleaned = strings.ToLower(strings.TrimSpace(cleaned))
	for _, id := range []string{NavModuleHome, NavPrevious, NavNext} {
		for _, label := range navLabels[id] {
			l := strings.ToLower(label)
			if cleaned == l || strings.HasPrefix(cleaned, l+":") || strings.HasPrefix(cleaned, l+" ") {
				return id, true
			}
		}
	}
	return "", false
}

func normalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ":")
	return strings.ToLower(strings.TrimSpace(s))
}
