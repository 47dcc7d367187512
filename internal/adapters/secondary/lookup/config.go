package lookup

type Config struct {
	TimeoutSeconds int `envconfig:"TIMEOUT" default:"30"`
}
