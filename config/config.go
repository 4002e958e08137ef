package config

import "github.com/spf13/viper"

var (
	KeyTracksDirectory = "tracks.directory"
	KeyListenAddress   = "serve.listen"
	KeyArrowIntervalKm = "map.arrow_interval_km"
	KeyLowColor        = "map.color_low"
	KeyHighColor       = "map.color_high"
	KeyLineWeight      = "map.line_weight"
	KeyLineOpacity     = "map.line_opacity"
)

func HasTracksDirectory() bool {
	return TracksDirectory() != ""
}

func TracksDirectory() string {
	return viper.GetString(KeyTracksDirectory)
}

func ListenAddress() string {
	if addr := viper.GetString(KeyListenAddress); addr != "" {
		return addr
	}

	return DefaultListenAddress()
}

func ArrowIntervalKm() float64 {
	if interval := viper.GetFloat64(KeyArrowIntervalKm); interval > 0 {
		return interval
	}

	return DefaultArrowIntervalKm()
}

func LowColor() string {
	if color := viper.GetString(KeyLowColor); color != "" {
		return color
	}

	return DefaultLowColor()
}

func HighColor() string {
	if color := viper.GetString(KeyHighColor); color != "" {
		return color
	}

	return DefaultHighColor()
}

func LineWeight() int {
	if weight := viper.GetInt(KeyLineWeight); weight > 0 {
		return weight
	}

	return DefaultLineWeight()
}

func LineOpacity() float64 {
	if opacity := viper.GetFloat64(KeyLineOpacity); opacity > 0 {
		return opacity
	}

	return DefaultLineOpacity()
}

func DefaultListenAddress() string {
	return ":8000"
}

func DefaultArrowIntervalKm() float64 {
	return 3.0
}

func DefaultLowColor() string {
	return "#3288bd"
}

func DefaultHighColor() string {
	return "#d53e4f"
}

func DefaultLineWeight() int {
	return 4
}

func DefaultLineOpacity() float64 {
	return 0.9
}

func DefaultExportDirectory() string {
	return "map-export"
}

func DefaultExportFilename() string {
	return "map.html"
}

func GPXExtensions() []string {
	return []string{".gpx"}
}
