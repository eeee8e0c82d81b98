package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// stringList reads a list setting given either as a comma separated string
// (flags, environment) or as a list (config file).
func stringList(key string) []string {
	s, ok := viper.Get(key).(string)
	if !ok {
		return viper.GetStringSlice(key)
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func intList(key string) ([]int, error) {
	if _, ok := viper.Get(key).(string); !ok {
		return viper.GetIntSlice(key), nil
	}
	items := stringList(key)
	out := make([]int, 0, len(items))
	for _, item := range items {
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", key)
		}
		out = append(out, v)
	}
	return out, nil
}

func joinInts(values []int) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = strconv.Itoa(v)
	}
	return strings.Join(items, ",")
}
