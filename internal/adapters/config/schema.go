package config

// File represents the structure of the .routelens.yaml configuration file.
// Every field is optional; missing fields keep their defaults.
type File struct {
	DumpPath      string   `yaml:"dumpPath"`
	RoutesCommand []string `yaml:"routesCommand"`
	RoutesFilter  *string  `yaml:"routesFilter"`
	ViewsDir      string   `yaml:"viewsDir"`
	ViewSuffixes  []string `yaml:"viewSuffixes"`
	Debounce      string   `yaml:"debounce"`
}
