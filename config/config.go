package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Storage    StorageConfig
	DB         DBConfig
	Redis      RedisConfig
	Scheduling SchedulingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// StorageConfig selects the appointment store driver. Driver is one of
// file, redis, postgres, memory; DataDir and Namespace apply to the file
// driver, Namespace also keys the redis driver.
type StorageConfig struct {
	Driver    string
	DataDir   string
	Namespace string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SchedulingConfig struct {
	ClosedWeekdays []time.Weekday
	HorizonDays    int
	TimeLabels     []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The .env file is optional; environment variables alone are fine.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("STORAGE_DATA_DIR", "./data")
	viper.SetDefault("STORAGE_NAMESPACE", "appointments")
	viper.SetDefault("SCHEDULING_CLOSED_WEEKDAYS", "Friday,Saturday")
	viper.SetDefault("SCHEDULING_HORIZON_DAYS", 30)

	closedWeekdays, err := parseWeekdays(viper.GetString("SCHEDULING_CLOSED_WEEKDAYS"))
	if err != nil {
		return nil, err
	}

	var timeLabels []string
	if raw := viper.GetString("SCHEDULING_TIME_LABELS"); raw != "" {
		for _, label := range strings.Split(raw, ",") {
			timeLabels = append(timeLabels, strings.TrimSpace(label))
		}
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Storage: StorageConfig{
			Driver:    viper.GetString("STORAGE_DRIVER"),
			DataDir:   viper.GetString("STORAGE_DATA_DIR"),
			Namespace: viper.GetString("STORAGE_NAMESPACE"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Scheduling: SchedulingConfig{
			ClosedWeekdays: closedWeekdays,
			HorizonDays:    viper.GetInt("SCHEDULING_HORIZON_DAYS"),
			TimeLabels:     timeLabels,
		},
	}

	return config, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekdays(raw string) ([]time.Weekday, error) {
	var weekdays []time.Weekday
	for _, name := range strings.Split(raw, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in SCHEDULING_CLOSED_WEEKDAYS", name)
		}
		weekdays = append(weekdays, day)
	}
	return weekdays, nil
}
