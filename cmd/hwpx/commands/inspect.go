package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaehoonkim/go-hwpx/pkg/hwpx"
)

// placeholders <file>: list the {{name}} markers found in the document.
func placeholdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "placeholders <file>",
		Short: "List placeholder names in a form document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := hwpx.OpenForm(args[0])
			if err != nil {
				return err
			}
			for _, name := range form.Placeholders() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

// fields <file>: print label/value pairs read from the document's tables.
func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <file>",
		Short: "List table label/value fields in a form document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := hwpx.OpenForm(args[0])
			if err != nil {
				return err
			}
			for _, field := range form.Fields() {
				fmt.Printf("table %d row %d: %s = %s\n",
					field.Table, field.Row, field.Label, field.Value)
			}
			return nil
		},
	}
}

// text <file>: dump the document's plain text.
func textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <file>",
		Short: "Print the plain text content of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := hwpx.OpenForm(args[0])
			if err != nil {
				return err
			}
			fmt.Println(form.Text())
			return nil
		},
	}
}
