package cmd

import (
	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/typeshift-io/typeshift/gen"
)

// targetsCmd represents the targets command
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List registered target languages",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range gen.TargetNames() {
			t, err := gen.LookupTarget(name)
			if err != nil {
				cmd.PrintErrln(err)
				continue
			}
			cmd.Printf("%s (*%s)\n", color.Cyan.Sprint(name), t.FileExtension())
		}
	},
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the typeshift version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(versionCmd)
}
