package spec

// Config is the .dailyq/config.yml schema.
type Config struct {
	Version     int    `yaml:"version" validate:"required,eq=1"`
	Input       string `yaml:"input" validate:"required"`
	Output      string `yaml:"output" validate:"required"`
	BucketCount int    `yaml:"bucket_count" validate:"gte=1,lte=366"`
}
