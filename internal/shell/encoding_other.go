//go:build !windows

package shell

import (
	"fmt"
	"os"
)

const defaultEncodingName = "UTF-8"

func consoleEncodingName() (string, error) {
	return localeCharset(os.Getenv)
}

// localeCharset follows the POSIX precedence LC_ALL, LC_CTYPE, LANG.
func localeCharset(getenv func(string) string) (string, error) {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := getenv(key)
		if value == "" {
			continue
		}
		if charset := charsetFromLocale(value); charset != "" {
			return charset, nil
		}
		return "", fmt.Errorf("%s=%q names no charset", key, value)
	}
	return "", fmt.Errorf("no locale set")
}
