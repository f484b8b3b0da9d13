// JSON output shapes for scripting consumers.
package glint

import (
	"encoding/json"
	"io"
)

type colorOutput struct {
	RepoDir string `json:"repo_dir"`
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Hex     string `json:"hex"`
	DimHex  string `json:"dim_hex"`
}

type whereOutput struct {
	RepoDir   string `json:"repo_dir"`
	CacheDir  string `json:"cache_dir"`
	CacheFile string `json:"cache_file"`
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
