package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Print the key and mouse controls",
	Long:  `Print the active key bindings, including any overrides from the config file.`,
	RunE:  runControls,
}

func init() {
	rootCmd.AddCommand(controlsCmd)
}

func runControls(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), bindings.Help())
	return nil
}
