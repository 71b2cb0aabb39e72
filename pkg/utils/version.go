package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// HasVersionFlag 檢查命令行是否要求輸出版本，返回是否要求以及是否使用 JSON
func HasVersionFlag(args []string) (requested bool, asJSON bool) {
	for i, arg := range args {
		switch {
		case arg == "--version" || arg == "-version":
			return true, false
		case arg == "--version-json":
			return true, true
		case i == 0 && arg == "version":
			return true, false
		}
	}
	return false, false
}

// PrintVersion 輸出版本信息，asJSON 時 info 以縮排 JSON 輸出
func PrintVersion(w io.Writer, text string, info interface{}, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("編碼版本信息失敗: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
