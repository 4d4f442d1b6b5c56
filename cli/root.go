package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lfarias/accounts"
)

var rootCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Local account manager",
	Long: `An interactive account manager: register, log in, change your
password and delete your account. Records live in a local JSON file.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().String("store", "accounts.json", "path to the accounts file")
	rootCmd.Flags().String("audit", "audit.log", "path to the audit log")

	viper.SetEnvPrefix("ACCOUNTS")
	viper.AutomaticEnv()

	_ = viper.BindPFlag("store", rootCmd.Flags().Lookup("store"))
	_ = viper.BindPFlag("audit", rootCmd.Flags().Lookup("audit"))
}

func run(cmd *cobra.Command, args []string) error {
	repo := accounts.NewFileRepository(viper.GetString("store"))
	events := accounts.NewFileEvents(viper.GetString("audit"))
	svc := accounts.NewService(repo, accounts.SHA256Hasher{}, events)

	return runMenu(svc)
}
