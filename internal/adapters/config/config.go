package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"

	"github.com/spf13/viper"

	"github.com/graphowls/graphowls-qr/internal/domain/common/errorz"
	"github.com/graphowls/graphowls-qr/internal/domain/service"
	"github.com/graphowls/graphowls-qr/internal/domain/utils/location"
	"github.com/graphowls/graphowls-qr/pkg/logger"
	qr "github.com/graphowls/graphowls-qr/pkg/qrcode"
)

type Config struct {
	Output string
	Verify bool
	Style  qr.Style
	Assets service.Assets
	Drawer qr.ModuleDrawer // nil unless qr.module-drawer is set
}

func setDefaults() {
	viper.SetDefault("settings.debug", false)
	viper.SetDefault("settings.timezone", "")
	viper.SetDefault("settings.log-to-file", false)
	viper.SetDefault("settings.logs-dir", "logs")

	viper.SetDefault("qr.output", "qr.png")
	viper.SetDefault("qr.verify", true)
	viper.SetDefault("qr.module-drawer", "")
	viper.SetDefault("qr.assets.rounded-logo", "assets/graphowls-rounded-logo.png")
	viper.SetDefault("qr.assets.square-logo", "assets/graphowls-square-logo.png")

	viper.SetDefault("qr.style.primary", hexColor(qr.GraphOwls.Primary))
	viper.SetDefault("qr.style.mask-accent", hexColor(qr.GraphOwls.MaskAccent))
	viper.SetDefault("qr.style.background", hexColor(qr.GraphOwls.Background))
	viper.SetDefault("qr.style.module-size", qr.GraphOwls.ModuleSize)
	viper.SetDefault("qr.style.quiet-zone", qr.GraphOwls.QuietZone)
	viper.SetDefault("qr.style.logo-ratio", qr.GraphOwls.LogoRatio)
}

// initConfig reads the config file at path. A missing file leaves the defaults in place
// unless required is set.
func initConfig(path string, required bool) (bool, error) {
	setDefaults()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !required && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return true, nil
}

// Get loads the configuration and initializes the logger. With required set a missing
// file is an error, otherwise the defaults apply.
func Get(path string, required bool) (*Config, error) {
	found, err := initConfig(path, required)
	if err != nil {
		return nil, err
	}

	loc, err := location.Load(viper.GetString("settings.timezone"))
	if err != nil {
		return nil, err
	}

	err = logger.Init(logger.Config{
		Debug:        viper.GetBool("settings.debug"),
		TimeLocation: loc,
		LogToFile:    viper.GetBool("settings.log-to-file"),
		LogsDir:      viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		return nil, err
	}

	style, err := loadStyle()
	if err != nil {
		return nil, err
	}

	var drawer qr.ModuleDrawer
	if name := viper.GetString("qr.module-drawer"); name != "" {
		drawer, err = qr.DrawerByName(name)
		if err != nil {
			return nil, err
		}
	}

	if found {
		logger.Log.Debugf("Loaded config from %s", path)
	}

	return &Config{
		Output: viper.GetString("qr.output"),
		Verify: viper.GetBool("qr.verify"),
		Style:  style,
		Assets: service.Assets{
			RoundedLogo: viper.GetString("qr.assets.rounded-logo"),
			SquareLogo:  viper.GetString("qr.assets.square-logo"),
		},
		Drawer: drawer,
	}, nil
}

func loadStyle() (qr.Style, error) {
	primary, err := parseHexColor(viper.GetString("qr.style.primary"))
	if err != nil {
		return qr.Style{}, err
	}
	accent, err := parseHexColor(viper.GetString("qr.style.mask-accent"))
	if err != nil {
		return qr.Style{}, err
	}
	background, err := parseHexColor(viper.GetString("qr.style.background"))
	if err != nil {
		return qr.Style{}, err
	}

	style := qr.Style{
		Primary:    primary,
		MaskAccent: accent,
		Background: background,
		ModuleSize: viper.GetInt("qr.style.module-size"),
		QuietZone:  viper.GetInt("qr.style.quiet-zone"),
		LogoRatio:  viper.GetFloat64("qr.style.logo-ratio"),
	}
	if err = style.Validate(); err != nil {
		return qr.Style{}, err
	}
	return style, nil
}

// parseHexColor parses an opaque "#rrggbb" color
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", errorz.InvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", errorz.InvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
