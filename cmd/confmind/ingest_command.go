package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var name string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a conference transcript and build its mind",
		Long: `Ingest parses a transcript (SRT, WebVTT, YouTube, speaker-labeled, or
plain text), extracts per-speaker style and skill profiles, detects shared
themes and tensions, and stores everything for later querying.

The transcript is read from --file, or from stdin when --file is omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, sourceLabel, err := readTranscript(cmd.InOrStdin(), filePath)
			if err != nil {
				return err
			}

			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}

			m, err := p.Ingest(cmd.Context(), text, name, sourceLabel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ingested %q (%d speakers, %d passages)\n",
				m.Name, len(m.Speakers), m.PassageCount())
			fmt.Fprintf(out, "Themes: %d  Tensions: %d\n", len(m.Themes), len(m.Tensions))
			fmt.Fprintf(out, "Stored at %s\n", p.Store().MindDir(m.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Transcript file to ingest (stdin when omitted)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Conference name (auto-generated when omitted)")
	return cmd
}

func readTranscript(stdin io.Reader, filePath string) (text, sourceLabel string, err error) {
	if strings.TrimSpace(filePath) == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), filepath.Base(filePath), nil
}
