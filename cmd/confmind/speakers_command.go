package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"confmind/internal/mind"
)

func newSpeakersCommand(ctx *commandContext) *cobra.Command {
	var conference string
	var detail bool

	cmd := &cobra.Command{
		Use:   "speakers",
		Short: "List a conference's speakers and their profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			name, err := resolveConference(p, conference)
			if err != nil {
				return err
			}
			m, err := p.Load(cmd.Context(), name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(m.Speakers) == 0 {
				fmt.Fprintf(out, "No speakers extracted from %q.\n", m.Name)
				return nil
			}

			if !detail {
				rows := make([][]string, 0, len(m.Speakers))
				for _, s := range m.Speakers {
					rows = append(rows, []string{
						s.Name,
						strconv.Itoa(len(s.Passages)),
						s.Profile.SentenceStructure,
						topSkill(s.Skills),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Speaker", "Passages", "Style", "Top Skill"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
				))
				return nil
			}

			for i, s := range m.Speakers {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s\n", s.Name)
				fmt.Fprintf(out, "  Passages:          %d (%d words)\n",
					s.Profile.PassageCount, s.Profile.WordCount)
				fmt.Fprintf(out, "  Sentence style:    %s (avg %.1f words)\n",
					s.Profile.SentenceStructure, s.Profile.AvgSentenceLength)
				fmt.Fprintf(out, "  Vocabulary:        %s\n", s.Profile.VocabularyRegister)
				fmt.Fprintf(out, "  Questions:         %s\n", s.Profile.QuestionFrequency)
				if len(s.Profile.SignaturePhrases) > 0 {
					fmt.Fprintf(out, "  Signature phrases: %s\n",
						strings.Join(s.Profile.SignaturePhrases, ", "))
				}
				for _, skill := range s.Skills {
					fmt.Fprintf(out, "  Skill: %s (%s, %d hits)\n",
						skill.Domain, skill.Strength, skill.HitCount)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&conference, "conference", "", "Conference to inspect (most recent when omitted)")
	cmd.Flags().BoolVar(&detail, "detail", false, "Show full style and skill profiles")
	return cmd
}

func topSkill(skills []mind.Skill) string {
	if len(skills) == 0 {
		return "-"
	}
	return skills[0].Domain
}
