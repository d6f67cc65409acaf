package cmd

type Config struct {
	HTTPPort            string
	ProductCSVPath      string
	PackagingConfigPath string
}
