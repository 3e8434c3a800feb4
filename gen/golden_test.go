package gen_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/typeshift-io/typeshift/ast"
	"github.com/typeshift-io/typeshift/gen"
	"github.com/typeshift-io/typeshift/gen/java"
	"github.com/typeshift-io/typeshift/gen/python"
)

var record = flag.Bool("record", false, "rewrite the golden outputs in testdata")

// configFor returns the generator setup for one expected-output file in
// a golden archive, nil for the input itself.
func configFor(name string) (gen.Target, gen.Options) {
	base := gen.Options{
		PreserveComments:         true,
		UseIdiomaticValueObjects: true,
		EmitTypedSignatures:      true,
	}
	switch filepath.Ext(name) {
	case ".py":
		base.TargetVersion = "3.11"
		return python.New(), base
	case ".java":
		base.TargetVersion = "17"
		base.NamespacePrefix = "com.example.app"
		return java.New(), base
	}
	return nil, base
}

func TestGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no golden archives under testdata")
	}

	for _, path := range paths {
		path := path
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		t.Run(name, func(t *testing.T) {
			arc, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatal(err)
			}

			var input []byte
			for _, f := range arc.Files {
				if f.Name == "ast.json" {
					input = f.Data
				}
			}
			if input == nil {
				t.Fatalf("%s: no ast.json section", path)
			}
			file, err := ast.DecodeJSON(input)
			if err != nil {
				t.Fatal(err)
			}

			changed := false
			for i := range arc.Files {
				f := &arc.Files[i]
				target, opts := configFor(f.Name)
				if target == nil {
					continue
				}
				got, err := gen.New(target, opts).Generate(file)
				if err != nil {
					t.Fatalf("%s: %v", f.Name, err)
				}
				if *record {
					if !bytes.Equal(f.Data, []byte(got)) {
						f.Data = []byte(got)
						changed = true
					}
					continue
				}
				if got != string(f.Data) {
					t.Errorf("%s output differs from %s (-want +got):\n%s", f.Name, path,
						cmp.Diff(strings.Split(string(f.Data), "\n"), strings.Split(got, "\n")))
				}
			}
			if *record && changed {
				if err := os.WriteFile(path, txtar.Format(arc), 0644); err != nil {
					t.Fatal(err)
				}
				t.Logf("recorded %s", path)
			}
		})
	}
}
