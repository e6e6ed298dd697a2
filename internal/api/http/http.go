package http

type Config struct {
	Port         uint `mapstructure:"port"`
	CookieSecure bool `mapstructure:"cookie_secure"`
}
