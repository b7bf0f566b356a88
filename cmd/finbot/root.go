package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "finbot",
		Short: "Personal finance ledger",
		Long: `Operator CLI for the finbot personal finance ledger.

Every command acts on behalf of the user given by --telegram-id. The user is
registered with the default categories on first contact. Each command runs as
a single unit of work that is rolled back when any step fails.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.Int64Var(&a.telegramID, "telegram-id", 0, "Messaging platform id of the acting user")
	flags.StringVar(&a.username, "username", "", "Username recorded when the user is registered")
	flags.StringVar(&a.firstName, "first-name", "", "First name recorded when the user is registered")
	flags.StringVar(&a.lastName, "last-name", "", "Last name recorded when the user is registered")

	root.AddCommand(
		newMigrateCommand(a),
		newSeedCommand(a),
		newUserCommand(a),
		newRecordCommand(a),
		newListCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newBalanceCommand(a),
		newReportCommand(a),
		newRecentCommand(a),
		newCategoriesCommand(a),
		newBudgetsCommand(a),
		newLimitsCommand(a),
		newDemoCommand(a),
	)

	return root
}
