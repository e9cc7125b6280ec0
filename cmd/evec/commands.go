// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/euclid/vector"
)

// newRootCmd assembles the evec command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "evec",
		Short: "evec - Euclidean vector calculator",
		Long: `evec evaluates vector expressions from the command line.

Vectors are given inline as comma-separated floats ("3,4,12") or by name
from a YAML file passed with --file:

  force: [3, 4, 12]
  drag:  [-1, 0, 2]

Put "--" before arguments that start with a minus sign.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			a.logger = newLogger(cmd.ErrOrStderr(), verbose)
			a.out = cmd.OutOrStdout()
			a.format, _ = cmd.Flags().GetString("format")
			if a.format != formatText && a.format != formatYAML {
				return fmt.Errorf("%w: %q", errUnknownFormat, a.format)
			}
			if path, _ := cmd.Flags().GetString("file"); path != "" {
				return a.loadFile(path)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringP("file", "f", getEnvStr("EVEC_FILE", ""), "YAML file of named vectors")
	rootCmd.PersistentFlags().String("format", getEnvStr("EVEC_FORMAT", formatText), "Output format: text, yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", getEnvBool("EVEC_VERBOSE", false), "Enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "evec v%s (%s)\n", version, commit)
		},
	})

	rootCmd.AddCommand(
		unaryVectorCmd(a, "norm", "Euclidean norm of a vector", func(v *vector.Vector) error {
			return a.emitScalar(vector.EuclideanNorm(v))
		}),
		unaryVectorCmd(a, "unit", "Unit vector in the direction of a vector", func(v *vector.Vector) error {
			u, err := vector.Unit(v)
			if err != nil {
				return err
			}
			return a.emitVector(u)
		}),
		unaryVectorCmd(a, "neg", "Negate a vector", func(v *vector.Vector) error {
			return a.emitVector(vector.Neg(v))
		}),
		binaryVectorCmd(a, "dot", "Dot product of two vectors", func(x, y *vector.Vector) error {
			d, err := vector.Dot(x, y)
			if err != nil {
				return err
			}
			return a.emitScalar(d)
		}),
		binaryVectorCmd(a, "add", "Element-wise sum of two vectors", func(x, y *vector.Vector) error {
			s, err := vector.Add(x, y)
			if err != nil {
				return err
			}
			return a.emitVector(s)
		}),
		binaryVectorCmd(a, "sub", "Element-wise difference of two vectors", func(x, y *vector.Vector) error {
			s, err := vector.Sub(x, y)
			if err != nil {
				return err
			}
			return a.emitVector(s)
		}),
		scalarCmd(a, "scale", "Multiply a vector by a scalar", func(v *vector.Vector, s float64) error {
			return a.emitVector(vector.Mul(v, s))
		}),
		scalarCmd(a, "div", "Divide a vector by a non-zero scalar", func(v *vector.Vector, s float64) error {
			q, err := vector.Div(v, s)
			if err != nil {
				return err
			}
			return a.emitVector(q)
		}),
	)

	return rootCmd
}

func unaryVectorCmd(a *app, use, short string, run func(v *vector.Vector) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " VECTOR",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseVector(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("evaluate", "op", use, "dim", v.Dimensions())
			return run(v)
		},
	}
}

func binaryVectorCmd(a *app, use, short string, run func(x, y *vector.Vector) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " X Y",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parseVector(args[0])
			if err != nil {
				return err
			}
			y, err := a.parseVector(args[1])
			if err != nil {
				return err
			}
			a.logger.Debug("evaluate", "op", use, "lhs_dim", x.Dimensions(), "rhs_dim", y.Dimensions())
			return run(x, y)
		},
	}
}

func scalarCmd(a *app, use, short string, run func(v *vector.Vector, s float64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " VECTOR SCALAR",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseVector(args[0])
			if err != nil {
				return err
			}
			s, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			a.logger.Debug("evaluate", "op", use, "dim", v.Dimensions(), "scalar", s)
			return run(v, s)
		},
	}
}
