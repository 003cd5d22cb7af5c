package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "hwpx",
		Short:         "Inspect and fill HWPX form documents",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(placeholdersCmd(), fieldsCmd(), fillCmd(), textCmd())
	return root.Execute()
}
