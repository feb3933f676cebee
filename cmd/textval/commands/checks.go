package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrled/suns/textval/internal/model"
)

func newPalindromeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "palindrome <text>",
		Short:   "Check whether text reads the same backwards",
		GroupID: "checks",
		Long: `Check whether text is a palindrome.

The comparison is exact: case and whitespace are significant, so "Racecar"
is not a palindrome. Prints true or false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.service.Palindrome(cmd.Context(), args[0])
			return a.report(cmd, record, err)
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add <a> <b>",
		Short:   "Add two numbers",
		GroupID: "checks",
		Long: `Add two numbers. Integers are added as integers, anything else as floats.

Use -- before negative numbers so they are not read as flags:
  textval add -- -4 -6`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.service.Add(cmd.Context(), args[0], args[1])
			return a.report(cmd, record, err)
		},
	}
}

func newDivideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "divide <a> <b>",
		Short:   "Divide a by b",
		GroupID: "checks",
		Long: `Divide a by b and print the floating-point quotient.

A zero divisor is an invalid argument and exits with status 2.
Use -- before negative numbers so they are not read as flags.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.service.Divide(cmd.Context(), args[0], args[1])
			return a.report(cmd, record, err)
		},
	}
}

func newXMLTextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "xmltext <element> <xml>",
		Short:   "Print the text of a child element of an XML document's root",
		GroupID: "checks",
		Long: `Parse an XML document and print the text of the first direct child of
the root element with the given name.

Example:
  textval xmltext name '<user><name>Alice</name></user>'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.service.XMLText(cmd.Context(), args[1], args[0])
			return a.report(cmd, record, err)
		},
	}
}

// report prints a successful result, or converts a failure to an ExitError
func (a *app) report(cmd *cobra.Command, record *model.CheckRecord, err error) error {
	if err != nil {
		return checkError(err)
	}

	out := cmd.OutOrStdout()
	if a.flags.Verbose {
		fmt.Fprintf(out, "%s\t%s\n", record.ID, record.Result)
		return nil
	}
	fmt.Fprintln(out, record.Result)
	return nil
}
