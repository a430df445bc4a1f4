package triadchain

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// DefaultDepth is the depth rendered when nothing overrides it.
const DefaultDepth = 3

var conf *viper.Viper

func MakeOrGetConfig() *viper.Viper {
	return conf
}

func SetConfig(config *viper.Viper) {
	conf = config
}

// Depth returns the configured diagram depth. Any integer is accepted,
// negative values included. Values that cannot be read as an integer fall
// back to DefaultDepth.
func Depth() int {
	if conf == nil {
		return DefaultDepth
	}
	raw := conf.Get("depth")
	depth, err := cast.ToIntE(raw)
	if err != nil {
		LogCLI(fmt.Sprintf("depth %q is not an integer, using %d", fmt.Sprint(raw), DefaultDepth), 2)
		return DefaultDepth
	}
	return depth
}
