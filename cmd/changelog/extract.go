package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var linkDefPattern = regexp.MustCompile(`(?m)^\[[^\]]+\]:\s+\S+\s*$`)

// stripLinkDefinitions drops trailing link definition lines that slip
// into the last release's notes.
func stripLinkDefinitions(notes string) string {
	var kept []string
	for _, line := range strings.Split(notes, "\n") {
		if !linkDefPattern.MatchString(line) {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func printRelease(history *History, release *Release) {
	if release.Date != "" {
		fmt.Printf("## [%s] - %s\n\n", release.Version, release.Date)
	} else {
		fmt.Printf("## [%s]\n\n", release.Version)
	}

	fmt.Print(stripLinkDefinitions(release.Notes))

	if url, ok := history.Links[release.Version]; ok {
		fmt.Printf("\n\n[%s]: %s\n", release.Version, url)
	}
}

func loadHistory(cmd *cobra.Command) (*History, error) {
	file, _ := cmd.Flags().GetString("file")

	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	history, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing changelog: %w", err)
	}
	return history, nil
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a version's changelog entry",
	Long:  `Extract the release notes for a specific version from a Keep a Changelog file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, _ := cmd.Flags().GetString("version")

		history, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		release := history.Release(version)
		if release == nil {
			return fmt.Errorf("version %s not found in changelog", version)
		}

		printRelease(history, release)
		return nil
	},
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Extract the newest release's changelog entry",
	Long:  `Extract the release notes of the newest published version, skipping the Unreleased section.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		release := history.Latest()
		if release == nil {
			return fmt.Errorf("no published releases found in changelog")
		}

		printRelease(history, release)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all versions in the changelog",
	Long:  `List all version sections found in a Keep a Changelog file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		for _, release := range history.Releases {
			if release.Date != "" {
				fmt.Printf("%s (%s)\n", release.Version, release.Date)
			} else {
				fmt.Println(release.Version)
			}
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{extractCmd, latestCmd, listCmd} {
		cmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
		rootCmd.AddCommand(cmd)
	}

	extractCmd.Flags().StringP("version", "v", "", "Version to extract (with or without 'v' prefix)")
	_ = extractCmd.MarkFlagRequired("version")
}
