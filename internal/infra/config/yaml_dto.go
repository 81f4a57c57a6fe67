package config

type YAMLConfig struct {
	Setupd struct {
		Server YAMLServer `yaml:"server"`
		Log    YAMLLog    `yaml:"log"`
	} `yaml:"setupd"`
}

type YAMLServer struct {
	Host *string `yaml:"host"`
	Port *int    `yaml:"port"`

	ReadHeaderTimeout string `yaml:"read_header_timeout"`
	IdleTimeout       string `yaml:"idle_timeout"`
	ShutdownTimeout   string `yaml:"shutdown_timeout"`
}

type YAMLLog struct {
	Debug *bool `yaml:"debug"`
}
