package assets

import (
	"log"
	"os"
	"path/filepath"
	"pedido_venda/internal/layout"
	"strings"
)

// LoadLogo reads the header logo from path. An empty path means no logo. A
// file that cannot be read is still returned, without data, so the rendered
// header records the substitution instead of silently dropping the logo.
func LoadLogo(path string) *layout.Image {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[assets][logo] read failed path=%s err=%v", path, err)
		return &layout.Image{Name: name}
	}
	log.Printf("[assets][logo] loaded path=%s bytes=%d", path, len(data))
	return &layout.Image{Name: name, Data: data}
}
