package main

import (
	"bytes"
	"errors"
	"go/ast"
	"go/build"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/librypt/librypt-int/internal/limbplan"
	"github.com/shabbyrobe/golib/assert"
	"go.uber.org/zap"
)

func testGenerator() *generator {
	return &generator{log: zap.NewNop()}
}

func TestRenderParses(t *testing.T) {
	for _, bits := range []int{8, 24, 48, 80, 128, 200, 256, 4096} {
		t.Run(fileName(bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			src, err := testGenerator().render(bits)
			tt.MustOK(err)

			f, err := parser.ParseFile(token.NewFileSet(), fileName(bits), src, 0)
			tt.MustOK(err)
			tt.MustEqual("bitint", f.Name.Name)
		})
	}
}

func TestRenderLimbs(t *testing.T) {
	tt := assert.WrapTB(t)
	src, err := testGenerator().render(80)
	tt.MustOK(err)

	s := string(src)
	tt.MustAssert(strings.Contains(s, "type U80 struct {\n\tl0 uint64\n\tl1 uint16\n}"), "%s", s)
	tt.MustAssert(strings.Contains(s, "u.l1 = le16(b[0:])\n\tu.l0 = le64(b[2:])"), "%s", s)
	tt.MustAssert(strings.Contains(s, "v.l1, c = addLimb(u.l1, n.l1, c)\n\tv.l0, c = addLimb(u.l0, n.l0, c)"), "%s", s)
	tt.MustAssert(strings.HasPrefix(s, "// Code generated by bitintgen. DO NOT EDIT.\n\npackage bitint\n"))
}

// TestRenderCompilesInPackage type-checks widths outside the catalogue as
// extra files of package bitint.
func TestRenderCompilesInPackage(t *testing.T) {
	for _, bits := range []int{8, 40, 136, 200} {
		t.Run(fileName(bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			src, err := testGenerator().render(bits)
			tt.MustOK(err)
			tt.MustOK(checkInPackage(fileName(bits), src))
		})
	}
}

const modulePath = "github.com/librypt/librypt-int"

var moduleRoot = filepath.Join("..", "..")

func checkInPackage(name string, src []byte) error {
	fset := token.NewFileSet()
	files, err := parsePackageDir(fset, moduleRoot)
	if err != nil {
		return err
	}
	f, err := parser.ParseFile(fset, name, src, 0)
	if err != nil {
		return err
	}
	files = append(files, f)

	imp := &moduleImporter{fset: fset, std: importer.Default(), pkgs: map[string]*types.Package{}}
	conf := types.Config{Importer: imp}
	_, err = conf.Check(modulePath, fset, files, nil)
	return err
}

// parsePackageDir parses the non-test files in dir that the default build
// context selects, so strict.go is left out in favour of relaxed.go.
func parsePackageDir(fset *token.FileSet, dir string) ([]*ast.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if ok, err := build.Default.MatchFile(dir, name); err != nil {
			return nil, err
		} else if !ok {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// moduleImporter resolves packages of this module from source and leaves the
// standard library to std.
type moduleImporter struct {
	fset *token.FileSet
	std  types.Importer
	pkgs map[string]*types.Package
}

func (m *moduleImporter) Import(path string) (*types.Package, error) {
	rel, ok := strings.CutPrefix(path, modulePath+"/")
	if !ok {
		return m.std.Import(path)
	}
	if pkg := m.pkgs[path]; pkg != nil {
		return pkg, nil
	}
	files, err := parsePackageDir(m.fset, filepath.Join(moduleRoot, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	conf := types.Config{Importer: m}
	pkg, err := conf.Check(path, m.fset, files, nil)
	if err != nil {
		return nil, err
	}
	m.pkgs[path] = pkg
	return pkg, nil
}

func TestRenderInvalidWidth(t *testing.T) {
	for _, bits := range []int{0, -8, 7, 12, 1001} {
		t.Run(fileName(bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := testGenerator().render(bits)
			tt.MustAssert(errors.Is(err, limbplan.ErrInvalidWidth), "%v", err)
		})
	}
}

// TestCheckedInFilesUpToDate regenerates the catalogue and compares it with
// the files in the package root. Run 'go generate' in the root if it fails.
func TestCheckedInFilesUpToDate(t *testing.T) {
	for _, bits := range []int{24, 48, 80, 256, 512, 1024, 2048, 4096} {
		t.Run(fileName(bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			want, err := testGenerator().render(bits)
			tt.MustOK(err)

			got, err := os.ReadFile(filepath.Join(moduleRoot, fileName(bits)))
			tt.MustOK(err)
			tt.MustAssert(bytes.Equal(want, got), "%s is stale", fileName(bits))
		})
	}
}

func TestParseWidths(t *testing.T) {
	tt := assert.WrapTB(t)

	widths, err := parseWidths([]string{"24", "80", "24", "256"})
	tt.MustOK(err)
	tt.MustEqual([]int{24, 80, 256}, widths)

	_, err = parseWidths([]string{"24", "big"})
	tt.MustAssert(err != nil)
}

func TestRunWritesFiles(t *testing.T) {
	tt := assert.WrapTB(t)
	dir := t.TempDir()

	tt.MustOK(run([]string{"-out", dir, "24", "80"}))
	for _, name := range []string{"u24.go", "u80.go"} {
		src, err := os.ReadFile(filepath.Join(dir, name))
		tt.MustOK(err)
		tt.MustAssert(len(src) > 0)
	}
}

func TestRunInvalidWidthWritesNothing(t *testing.T) {
	tt := assert.WrapTB(t)
	dir := t.TempDir()

	err := run([]string{"-out", dir, "24", "12"})
	tt.MustAssert(errors.Is(err, limbplan.ErrInvalidWidth), "%v", err)

	entries, err := os.ReadDir(dir)
	tt.MustOK(err)
	tt.MustEqual(0, len(entries))
}

func TestRunUsage(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(errors.Is(run(nil), errUsage))
	tt.MustAssert(errors.Is(run([]string{"-nope"}), errUsage))
	tt.MustAssert(errors.Is(run([]string{"-pkg", "wide", "24"}), errUsage))
}
