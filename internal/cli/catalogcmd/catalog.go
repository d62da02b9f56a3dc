// Package catalogcmd holds the catalogctl admin subcommands.
package catalogcmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	common "github.com/cuihairu/labcatalog/internal/cli/common"
	"github.com/cuihairu/labcatalog/internal/db"
	"github.com/cuihairu/labcatalog/internal/events"
	repocatalog "github.com/cuihairu/labcatalog/internal/repo/gorm/catalog"
	"github.com/cuihairu/labcatalog/internal/seed"
	"github.com/cuihairu/labcatalog/internal/service/catalog"
)

// Options are the persistent flags shared by every subcommand.
type Options struct {
	ConfigFile string
	Includes   []string
	Profile    string
	Driver     string
	DSN        string
}

// Bind registers the shared flags on cmd.
func (o *Options) Bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.ConfigFile, "config", "services/catalog/etc/catalog.yaml", "service config file")
	f.StringSliceVar(&o.Includes, "include", nil, "extra config files merged in order")
	f.StringVar(&o.Profile, "profile", "", "profile overlay from the profiles section")
	f.StringVar(&o.Driver, "driver", "", "database driver override: sqlite|memory|postgres|mysql|sqlserver")
	f.StringVar(&o.DSN, "dsn", "", "database DSN override")
}

// load reads config and sets up the slog logger from it.
func (o *Options) load() (*viper.Viper, *slog.Logger, error) {
	v, err := common.Load(o.ConfigFile, o.Includes, o.Profile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if o.Driver != "" {
		v.Set("database.driver", o.Driver)
	}
	if o.DSN != "" {
		v.Set("database.dsn", o.DSN)
	}
	l := common.SetupLogger(common.LogOptionsFrom(v))
	return v, l, nil
}

func openDB(v *viper.Viper, l *slog.Logger) (*gorm.DB, error) {
	driver, dsn := common.Database(v)
	gdb, err := db.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := repocatalog.AutoMigrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	l.Info("database ready", "driver", driver)
	return gdb, nil
}

// NewMigrate returns `catalogctl migrate`.
func NewMigrate(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, l, err := o.load()
			if err != nil {
				return err
			}
			if _, err := openDB(v, l); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

// NewSeed returns `catalogctl seed`.
func NewSeed(o *Options) *cobra.Command {
	var (
		file  string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load catalog fixtures (bundled demo data by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, l, err := o.load()
			if err != nil {
				return err
			}
			fixtures := seed.Demo()
			if file != "" {
				if fixtures, err = seed.ParseFile(file); err != nil {
					return err
				}
			}
			gdb, err := openDB(v, l)
			if err != nil {
				return err
			}
			pub := events.NewFromConfig(eventsConfig(v))
			defer pub.Close()

			r := repocatalog.NewRepo(gdb)
			svc := catalog.NewService(repocatalog.NewUnitOfWork(gdb), catalog.Repositories{
				Developers: repocatalog.NewDeveloperRepo(r),
				Publishers: repocatalog.NewPublisherRepo(r),
				Genres:     repocatalog.NewGenreRepo(r),
				Games:      repocatalog.NewVideoGameRepo(r),
			}, catalog.WithPublisher(pub))
			apply := func(f *seed.Fixtures) error {
				res, err := seed.Apply(cmd.Context(), svc, f)
				if err != nil {
					return err
				}
				l.Info("seed applied", "created", res.Created, "skipped", res.Skipped)
				fmt.Fprintf(cmd.OutOrStdout(), "created=%d skipped=%d\n", res.Created, res.Skipped)
				return nil
			}
			if err := apply(fixtures); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if file == "" {
				return fmt.Errorf("--watch needs --file")
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			l.Info("watching fixtures", "file", file)
			return seed.Watch(ctx, file, 500*time.Millisecond, apply, l)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "fixtures YAML file")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-apply the fixtures file whenever it changes")
	return cmd
}

// NewConfigTest returns `catalogctl config test`.
func NewConfigTest(o *Options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Validate and print the effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := o.load()
			if err != nil {
				return err
			}
			if err := common.ValidateCatalogConfig(v, strict); err != nil {
				return fmt.Errorf("config invalid: %w", err)
			}
			driver, _ := common.Database(v)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name=%s addr=%s:%d\n", v.GetString("name"), v.GetString("host"), v.GetInt("port"))
			fmt.Fprintf(out, "database.driver=%s events.type=%s\n", driver, v.GetString("events.type"))
			fmt.Fprintln(out, "config OK")
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "require an explicit database DSN")
	parent := &cobra.Command{Use: "config", Short: "Config utilities"}
	parent.AddCommand(cmd)
	return parent
}

func eventsConfig(v *viper.Viper) events.Config {
	return events.Config{
		Type:         v.GetString("events.type"),
		RedisURL:     v.GetString("events.redisurl"),
		Stream:       v.GetString("events.stream"),
		MaxLen:       v.GetInt64("events.maxlen"),
		MaxLenApprox: v.GetBool("events.maxlenapprox"),
		Brokers:      v.GetStringSlice("events.brokers"),
		Topic:        v.GetString("events.topic"),
	}
}
