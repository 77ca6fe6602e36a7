package functions

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// PrettyPrint - print JSON with indentation
func PrettyPrint(w io.Writer, data any) error {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		slog.Error("error parsing to JSON", "error", err.Error())
		return err
	}
	_, err = fmt.Fprintln(w, string(body))
	return err
}
