package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatrixCmd(a *app) *cobra.Command {
	var (
		file   string
		digits int
	)

	cmd := &cobra.Command{
		Use:   "matrix [x,y ...]",
		Short: "Print the distance matrix of an instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if digits < 0 {
				return fmt.Errorf("digits must be >= 0, got %d", digits)
			}
			inst, err := loadInstance(file, args)
			if err != nil {
				return err
			}
			m, err := inst.Matrix()
			if err != nil {
				return err
			}
			a.log().Debug("built matrix", "cities", m.Rows())

			fmt.Fprint(cmd.OutOrStdout(), m.Format(fmt.Sprintf("%%.%df", digits)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "instance file (YAML or JSON)")
	cmd.Flags().IntVar(&digits, "digits", 2, "decimal places per entry")

	return cmd
}
