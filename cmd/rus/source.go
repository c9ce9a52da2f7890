package main

import (
	"io"
	"os"
)

// readSource loads the file at path, or stdin when path is "-". It
// returns the label to stamp into locations along with the text.
func readSource(path string) (label, source string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return path, string(data), nil
}
