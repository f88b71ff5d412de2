package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// Issue is a single validation finding. Line 0 means the finding is
// about the file as a whole.
type Issue struct {
	Line    int
	Message string
}

// Report holds the findings of a validation run.
type Report struct {
	Issues []Issue
}

func (r *Report) add(line int, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{Line: line, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) Valid() bool {
	return len(r.Issues) == 0
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a changelog follows Keep a Changelog spec",
	Long: `Validate that a changelog file follows the Keep a Changelog format.

Checks include:
- File has a title (# Changelog)
- Has an [Unreleased] section
- Version sections use the form: ## [X.Y.Z] - YYYY-MM-DD
- Change types are one of Added, Changed, Deprecated, Removed, Fixed, Security
- Link definitions exist for every section`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		report := Validate(content)

		if report.Valid() {
			fmt.Println("✓ Changelog is valid")
			return nil
		}

		fmt.Printf("Found %d issue(s):\n\n", len(report.Issues))
		for _, issue := range report.Issues {
			if issue.Line > 0 {
				fmt.Printf("  Line %d: %s\n", issue.Line, issue.Message)
			} else {
				fmt.Printf("  %s\n", issue.Message)
			}
		}

		os.Exit(1)
		return nil
	},
}

var (
	releaseHeadingRegex = regexp.MustCompile(`^## \[([^\]]+)\](?:\s*-\s*(.*))?$`)
	dateRegex           = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	semverRegex         = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	changeTypes         = map[string]bool{
		"Added":      true,
		"Changed":    true,
		"Deprecated": true,
		"Removed":    true,
		"Fixed":      true,
		"Security":   true,
	}
)

// Validate checks a changelog against the Keep a Changelog format.
func Validate(source []byte) *Report {
	report := &Report{}
	history, _ := Parse(source)

	hasTitle := false
	hasUnreleased := false

	for i, line := range strings.Split(string(source), "\n") {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "# ") {
			hasTitle = true
			if !strings.Contains(strings.ToLower(trimmed), "changelog") {
				report.add(lineNum, "Title should contain 'Changelog'")
			}
			continue
		}

		if m := releaseHeadingRegex.FindStringSubmatch(trimmed); m != nil {
			version, date := m[1], strings.TrimSpace(m[2])
			if strings.EqualFold(version, "unreleased") {
				hasUnreleased = true
				continue
			}

			if !semverRegex.MatchString(version) {
				report.add(lineNum, "Version '%s' should follow semantic versioning (X.Y.Z)", version)
			}
			switch {
			case date == "":
				report.add(lineNum, "Version '%s' is missing a release date", version)
			case !dateRegex.MatchString(date):
				report.add(lineNum, "Date '%s' should be in ISO 8601 format (YYYY-MM-DD)", date)
			}
			continue
		}

		if changeType, ok := strings.CutPrefix(trimmed, "### "); ok {
			if !changeTypes[changeType] {
				report.add(lineNum, "Invalid change type '%s'. Valid types: Added, Changed, Deprecated, Removed, Fixed, Security", changeType)
			}
		}
	}

	if !hasTitle {
		report.add(0, "Missing changelog title (# Changelog)")
	}
	if !hasUnreleased {
		report.add(0, "Missing [Unreleased] section")
	}

	if history != nil {
		for _, release := range history.Releases {
			if _, ok := history.Links[release.Version]; ok {
				continue
			}
			if release.Released() {
				report.add(0, "Missing link definition for version [%s]", release.Version)
			} else {
				report.add(0, "Missing link definition for [Unreleased]")
			}
		}
	}

	return report
}

func init() {
	validateCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
	rootCmd.AddCommand(validateCmd)
}
