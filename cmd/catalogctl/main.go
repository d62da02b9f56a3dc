package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuihairu/labcatalog/internal/cli/catalogcmd"
)

func main() {
	root := &cobra.Command{Use: "catalogctl", Short: "Lab catalog admin CLI", SilenceUsage: true}

	var opts catalogcmd.Options
	opts.Bind(root)
	root.AddCommand(catalogcmd.NewMigrate(&opts))
	root.AddCommand(catalogcmd.NewSeed(&opts))
	root.AddCommand(catalogcmd.NewConfigTest(&opts))
	root.AddCommand(catalogcmd.NewEventsTail(&opts))

	// completion
	comp := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return fmt.Errorf("unknown shell: %s", args[0])
		},
	}
	root.AddCommand(comp)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
