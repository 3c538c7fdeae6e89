package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "REVIEWS_CONFIG_FILE"

type affiliate struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
}

type mail struct {
	SendGridKey string `mapstructure:"sendgrid_key"`
	FromName    string `mapstructure:"from_name"`
	FromEmail   string `mapstructure:"from_email"`
}

type topics struct {
	ClickEvents     string `mapstructure:"click_events"`
	PopularityTable string `mapstructure:"popularity_table"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SiteURL        string     `mapstructure:"site_url"`
	Affiliate      affiliate  `mapstructure:"affiliate"`
	Mail           mail       `mapstructure:"mail"`
	Broker         broker     `mapstructure:"broker"`
}

// BrokerEnabled reports whether the click stream should be wired. An
// empty seed broker list runs the API standalone.
func (c Config) BrokerEnabled() bool {
	return len(c.Broker.SeedBrokers) > 0
}

func Load() Config {
	_ = godotenv.Load()

	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	applyEnvSecrets(&cfg)
	return cfg
}

// applyEnvSecrets lets credentials come from the environment so the
// config file can be committed without them.
func applyEnvSecrets(cfg *Config) {
	if v, ok := os.LookupEnv("AFFILIATE_API_KEY"); ok {
		cfg.Affiliate.APIKey = v
	}
	if v, ok := os.LookupEnv("SENDGRID_API_KEY"); ok {
		cfg.Mail.SendGridKey = v
	}
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SiteURL=%q

	Affiliate:
	APIURL=%q

	Mail:
	FromName=%q
	FromEmail=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		ClickEvents=%q
		PopularityTable=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SiteURL,
		c.Affiliate.APIURL,
		c.Mail.FromName,
		c.Mail.FromEmail,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.ClickEvents,
		c.Broker.Topics.PopularityTable,
	)
}
