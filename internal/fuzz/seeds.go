package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

// languageSeeds covers every production of the grammar at least once.
var languageSeeds = []string{
	"",
	"import ballerina/http;\nimport a.b.c as d;\n",
	"public listener http:Listener ep = new (9090);\n",
	"const int MAX = 100;\nconst NAME = \"x\";\n",
	"public final string? s = \"a\" + \"b\";\n",
	"function f(int a, string b) returns int {\n    return a * (2 - -a) % 3;\n}\n",
	"function g() {\n    x.y.z(1, n = 2);\n    final int v = !true;\n    return;\n}\n",
	"// only a comment\r\n\t\r\n",
	"int big = 99999999999999999999;\n",
	"float f = 1.5e3;\ndecimal d = 0.1;\nboolean b = false;\nany a = ();\n",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.bal файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".bal" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
