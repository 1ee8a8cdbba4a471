//go:build windows

package shell

import (
	"os/exec"

	"golang.org/x/text/encoding/charmap"
)

const defaultEncodingName = "cp850"

func consoleEncodingName() (string, error) {
	out, err := exec.Command("cmd", "/C", "chcp").Output()
	if err != nil {
		return "", err
	}
	text, err := charmap.CodePage850.NewDecoder().Bytes(out)
	if err != nil {
		return "", err
	}
	return codePageFromChcp(string(text))
}
