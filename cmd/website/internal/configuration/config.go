package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AlbumsURL           string `flag:"albumsurl" env:"ALBUMS_URL" default:"https://jsonplaceholder.typicode.com/albums" description:"REST endpoint returning the album list"`
	CookieSecret        string `flag:"cookiesecret" env:"COOKIE_SECRET" default:"password" description:"Secret for encoding cookies"`
	FetchTimeoutSeconds int    `flag:"fetchtimeout" env:"FETCH_TIMEOUT_SECONDS" default:"0" description:"Timeout for album and photo fetches in seconds. 0 waits forever"`
	Host                string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	LogFile             string `flag:"logfile" env:"LOG_FILE" default:"" description:"Optional file to also write logs to. Rotated by size"`
	LogFormat           string `flag:"logformat" env:"LOG_FORMAT" default:"text" description:"Log output format. Valid values are 'text' and 'json'"`
	LogLevel            string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxFetchWorkers     int    `flag:"mfw" env:"MAX_FETCH_WORKERS" default:"20" description:"Maximum number of concurrent album and photo fetches"`
	PhotosURL           string `flag:"photosurl" env:"PHOTOS_URL" default:"https://jsonplaceholder.typicode.com/photos" description:"REST endpoint returning the photo list"`
	PlaceholderSize     int    `flag:"phsize" env:"PLACEHOLDER_SIZE" default:"24" description:"Longest edge, in pixels, of placeholder images"`
	SessionTTLMinutes   int    `flag:"sessionttl" env:"SESSION_TTL_MINUTES" default:"60" description:"Minutes an idle gallery session is kept in memory"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
