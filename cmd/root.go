package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jacsonsite/auth"
	"jacsonsite/config"
	"jacsonsite/db"
	"jacsonsite/db/mongodb"
	"jacsonsite/i18n"
	"jacsonsite/store"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "jacsonsite",
	Short: "Jacson Topografia website and content API",
	Long: `jacsonsite serves the public Jacson Topografia & Agrimensura website
and the JSON API used by its admin panel.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")
}

func initializeConfig(cmd *cobra.Command) error {
	// hash-password works offline and must not require production settings.
	if cmd == hashPasswordCmd {
		return nil
	}
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg
	if i18n.Supported(cfg.DefaultLang) {
		i18n.DefaultLang = cfg.DefaultLang
	}
	return nil
}

// openStore picks the backend from the URL scheme: MongoDB for mongodb://
// and mongodb+srv://, SQLite for anything else.
func openStore(ctx context.Context, url string) (store.Store, error) {
	if strings.HasPrefix(url, "mongodb://") || strings.HasPrefix(url, "mongodb+srv://") {
		log.Println("Using MongoDB store")
		s, err := mongodb.Open(ctx, url)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	log.Printf("Using SQLite store at %s", strings.TrimPrefix(url, "sqlite://"))
	d, err := db.Open(url)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func newAuthService(st store.Store) *auth.Service {
	return auth.NewService(st, auth.NewTokens(appConfig.JWTSecret, appConfig.TokenTTL))
}
