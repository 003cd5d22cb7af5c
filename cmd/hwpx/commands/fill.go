package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaehoonkim/go-hwpx/pkg/hwpx"
)

// fill <in> <out>: replace placeholders and write the result.
func fillCmd() *cobra.Command {
	var sets []string
	var missing string

	cmd := &cobra.Command{
		Use:   "fill <input> <output>",
		Short: "Fill placeholders and write a new document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(sets))
			for _, kv := range sets {
				name, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, expected name=value", kv)
				}
				values[name] = value
			}

			var policy hwpx.FillPolicy
			switch missing {
			case "keep":
				policy = hwpx.PolicyKeep
			case "blank":
				policy = hwpx.PolicyBlank
			case "fail":
				policy = hwpx.PolicyFail
			default:
				return fmt.Errorf("invalid --missing %q, expected keep, blank, or fail", missing)
			}

			form, err := hwpx.OpenForm(args[0])
			if err != nil {
				return err
			}
			if err := form.Fill(values, policy); err != nil {
				return err
			}
			if err := form.Save(args[1]); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[1])
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "placeholder value as name=value (repeatable)")
	cmd.Flags().StringVar(&missing, "missing", "keep", "policy for unfilled placeholders: keep, blank, or fail")
	return cmd
}
