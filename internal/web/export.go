package web

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Export writes the listing page, one page per project and a 404 page under
// dir, rendered with the given initial theme. Each assets entry maps a URL
// prefix ("static", "images") to a source directory copied to dir/prefix;
// missing source directories are skipped.
func Export(site *Site, dir string, dark bool, assets map[string]string) error {
	t, err := ParseTemplates()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	write := func(rel, name string, data any) error {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := Render(t, f, name, data); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}

	if err := write("index.html", homeTemplate, site.Home(dark)); err != nil {
		return err
	}
	for _, p := range site.Catalog.All() {
		page, err := site.Project(p.Slug, dark)
		if err != nil {
			return err
		}
		if err := write(filepath.Join("projects", p.Slug, "index.html"), projectTemplate, page); err != nil {
			return err
		}
	}
	if err := write("404.html", notFoundTemplate, site.NotFound("", dark)); err != nil {
		return err
	}
	for prefix, src := range assets {
		if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
			log.Printf("Asset directory %s not found, skipping /%s", src, prefix)
			continue
		}
		if err := copyDir(src, filepath.Join(dir, prefix)); err != nil {
			return fmt.Errorf("copy %s assets: %w", prefix, err)
		}
	}
	if _, ok := assets["static"]; ok {
		if _, err := os.Stat(filepath.Join(dir, "static", "folio.wasm")); err != nil {
			log.Printf("static/folio.wasm missing; run go generate to build the browser module")
		}
	}
	log.Printf("Exported %d projects to %s", site.Catalog.Len(), dir)
	return nil
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
