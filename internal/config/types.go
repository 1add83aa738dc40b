package config

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"`
}

// ConfigStorage настройки хранения адресной книги
type ConfigStorage struct {
	Driver    string `mapstructure:"driver"`
	Dir       string `mapstructure:"dir"`
	AutoSave  string `mapstructure:"auto_save"`
	Extension string `mapstructure:"extension"`
}

// ConfigBirthdays настройки поздравлений и слияния контактов
type ConfigBirthdays struct {
	WindowDays int    `mapstructure:"window_days"`
	Separator  string `mapstructure:"separator"`
}

// Config основная структура конфигурации
type Config struct {
	Logger    *ConfigLogger    `mapstructure:"logger"`
	Storage   *ConfigStorage   `mapstructure:"storage"`
	Birthdays *ConfigBirthdays `mapstructure:"birthdays"`
}

const (
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Defaults возвращает значения по умолчанию для всех ключей
func (c *Config) Defaults() map[string]any {
	return map[string]any{
		"logger.level":          "info",
		"logger.file":           "addressbook.log",
		"logger.format":         "json",
		"storage.driver":        DriverFile,
		"storage.dir":           ".",
		"storage.auto_save":     "auto_save",
		"storage.extension":     ".json",
		"birthdays.window_days": 7,
		"birthdays.separator":   "; ",
	}
}
