package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RobbieVerdurme/truncate.js/config"
	"github.com/RobbieVerdurme/truncate.js/measure"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the options file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.SchemaJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newOraclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "oracles",
		Short: "List the available height oracles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(measure.Available(), "\n"))
			return err
		},
	}
}
