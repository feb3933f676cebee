package commands

import (
	"github.com/spf13/cobra"
)

// PersistenceFlags holds flags related to persistence and data storage options
type PersistenceFlags struct {
	ConfigPath     string
	FilePath       string
	DynamoTable    string
	DynamoEndpoint string
	LogLevel       string
	Verbose        bool
}

// addPersistenceFlags adds common persistence-related flags to a command and its children
func addPersistenceFlags(cmd *cobra.Command, flags *PersistenceFlags) {
	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVarP(&flags.FilePath, "file", "f", "", "Path to JSON file for check history")
	cmd.PersistentFlags().StringVarP(&flags.DynamoTable, "dynamodb-table", "t", "", "DynamoDB table name for check history")
	cmd.PersistentFlags().StringVarP(&flags.DynamoEndpoint, "dynamodb-endpoint", "e", "", "DynamoDB endpoint URL (optional, uses AWS SDK default if not specified)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print the record ID with each result")
}
