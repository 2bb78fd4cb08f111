package file

type Config struct {
	Path string `envconfig:"PATH" default:"data.json"`
}
