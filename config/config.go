// Package config 读取命令行工具的配置：配置文件（json/yaml）、DXFMAP_* 环境变量与默认值。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/zooyer/dxfmap/geo"
	"github.com/zooyer/dxfmap/workflow"
)

const envPrefix = "DXFMAP"

var ErrNoOrigin = errors.New("config: origin lat/lon is required")

type Config struct {
	Origin      geo.Origin     `mapstructure:"origin"`
	Format      string         `mapstructure:"format"`
	Output      string         `mapstructure:"output"`
	ElementsCSV string         `mapstructure:"elements_csv"`
	Workers     int            `mapstructure:"workers"`
	Pause       bool           `mapstructure:"pause"`
	Plans       []workflow.Job `mapstructure:"plans"`
}

// SetDefaults 默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", "json")
	v.SetDefault("workers", 4)
	v.SetDefault("pause", false)
}

// New 创建带默认值与环境变量绑定的 viper 实例
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load 读取配置文件（可为空），再合并环境变量和已绑定的命令行参数
func Load(v *viper.Viper, filename string) (*Config, error) {
	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", filename, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	return &cfg, nil
}

// Validate 单文件转换需要原点
func (c *Config) Validate() error {
	if c.Origin.Lat == 0 && c.Origin.Lon == 0 {
		return ErrNoOrigin
	}
	if c.Origin.Lat < -90 || c.Origin.Lat > 90 || c.Origin.Lon < -180 || c.Origin.Lon > 180 {
		return fmt.Errorf("config: origin out of range: %+v", c.Origin)
	}
	return nil
}
