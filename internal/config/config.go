package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is reported to MCP clients and in the default User-Agent.
const Version = "1.0.8"

func Init(root *cobra.Command) {
	_ = godotenv.Load("config.env")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if root != nil {
		// Flags are spelled with dashes, keys with underscores.
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, "https://linux.do")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8080)
	viper.SetDefault(KeyRequestTimeout, "30s")
	viper.SetDefault(KeyRequestsPerSecond, 0.0)
	viper.SetDefault(KeyUserAgent, "linux-do-mcp/"+Version)
}

func APIKey() string             { return viper.GetString(KeyAPIKey) }
func Username() string           { return viper.GetString(KeyUsername) }
func BaseURL() string            { return viper.GetString(KeyBaseURL) }
func LogLevel() string           { return viper.GetString(KeyLogLevel) }
func Transport() string          { return viper.GetString(KeyTransport) }
func Host() string               { return viper.GetString(KeyHost) }
func Port() int                  { return viper.GetInt(KeyPort) }
func RequestTimeout() string     { return viper.GetString(KeyRequestTimeout) }
func RequestsPerSecond() float64 { return viper.GetFloat64(KeyRequestsPerSecond) }
func UserAgent() string          { return viper.GetString(KeyUserAgent) }
