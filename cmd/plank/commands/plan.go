package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/plank/internal/app"
	"go.trai.ch/plank/internal/core/domain"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	var req app.PlanRequest
	var destination, tools, configuration string

	cmd := &cobra.Command{
		Use:   "plan [dir]",
		Short: "Plan the build of a package and print the command lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Dir = "."
			if len(args) == 1 {
				req.Dir = args[0]
			}
			req.Destination = domain.TargetTriple(destination)
			req.Tools = domain.TargetTriple(tools)
			req.Configuration = domain.BuildConfiguration(configuration)

			p, err := c.app.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for desc := range p.TargetEntries() {
				_, _ = fmt.Fprintf(out, "# target %s (%s)\n", desc.TargetName(), desc.Triple())
				_, _ = fmt.Fprintln(out, strings.Join(desc.EmitCommandLine(), " "))
			}
			for desc := range p.ProductEntries() {
				_, _ = fmt.Fprintf(out, "# product %s (%s)\n", desc.ProductName(), desc.Triple())
				_, _ = fmt.Fprintln(out, strings.Join(desc.LinkArguments(), " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "triple", "", "Destination target triple (defaults to the host)")
	cmd.Flags().StringVar(&tools, "tools-triple", "", "Tools target triple for macro plugins")
	cmd.Flags().StringVarP(&configuration, "configuration", "c", "debug", "Build configuration (debug|release)")
	cmd.Flags().StringVar(&req.DataPath, "build-path", ".build", "Build output root")
	cmd.Flags().StringVar(&req.ToolchainRoot, "toolchain-root", "", "Custom toolchain root override")
	cmd.Flags().BoolVar(&req.StaticStdlib, "static-stdlib", false, "Link the standard library statically")
	cmd.Flags().BoolVar(&req.DeadStrip, "dead-strip", false, "Dead-strip unused sections when linking")

	return cmd
}
