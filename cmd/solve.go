package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/jmath/jmath/internal/llm"
	"github.com/jmath/jmath/internal/tutor"
	"github.com/jmath/jmath/internal/ui/theme"
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem>",
	Short: "Solve one problem and print the steps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		similar, _ := cmd.Flags().GetBool("similar")
		diagram, _ := cmd.Flags().GetBool("diagram")
		problem := strings.Join(args, " ")

		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		provider, err := llm.NewProvider(ctx, cfg.LLM(), nil, log)
		if err != nil {
			return err
		}
		svc := tutor.NewService(provider, log)
		out := cmd.OutOrStdout()

		raw, err := svc.Solve(ctx, problem)
		if err != nil {
			return err
		}
		steps, err := tutor.DecodeSteps(raw)
		if err != nil {
			return err
		}
		printSteps(out, steps)

		if similar {
			raw, err := svc.GenerateSimilar(ctx, problem)
			if err != nil {
				return err
			}
			problems, err := tutor.DecodeProblems(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.SectionTitle.Render("유사 문제"))
			for i, p := range problems {
				fmt.Fprintf(out, "%d. %s\n", i+1, p)
			}
		}

		if diagram {
			text, err := svc.VisualizeConcepts(ctx, tutor.CoreConcepts(steps))
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.SectionTitle.Render("개념 관계도"))
			fmt.Fprintln(out, text)
		}
		return nil
	},
}

func printSteps(w io.Writer, steps []tutor.SolutionStep) {
	fmt.Fprintln(w, theme.SectionTitle.Render("풀이 결과"))
	for _, s := range steps {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			theme.StepNumber.Render(fmt.Sprint(s.StepNumber)), " ",
			lipgloss.NewStyle().Width(72).Render(s.Description)))
		fmt.Fprintln(w, "    "+theme.ConceptBadge.Render("("+s.CoreConcept+")"))
	}
}

func init() {
	solveCmd.Flags().Bool("similar", false, "Also generate similar practice problems")
	solveCmd.Flags().Bool("diagram", false, "Also print a Mermaid concept map of the steps")
}
