package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loom/internal/check"
	"loom/internal/diag"
	"loom/internal/parser"
	"loom/internal/source"
	"loom/internal/syntax"
)

func parse(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	fs := source.NewFileSetWithBase("")
	fid := fs.AddVirtual("check.bal", []byte(src))
	res := parser.ParseFile(fs.Get(fid), parser.Options{})
	require.NotNil(t, res.Tree)
	return res.Tree
}

func run(t *testing.T, src string, opts check.Options) (check.Result, []diag.Diagnostic) {
	t.Helper()
	bag := diag.NewBag(100)
	opts.Reporter = diag.BagReporter{Bag: bag}
	res := check.Check(parse(t, src), opts)
	return res, bag.Items()
}

func TestDuplicateNames(t *testing.T) {
	src := "int a = 1;\nfunction a() {}\nconst b = 2;\n"
	res, ds := run(t, src, check.Options{})

	require.Len(t, ds, 1)
	d := ds[0]
	assert.Equal(t, diag.ChkDuplicateName, d.Code)
	assert.Equal(t, diag.SevError, d.Severity)
	assert.Equal(t, "duplicate module-level name 'a'; first declared as int a = 1;", d.Text())
	assert.Equal(t, uint32(20), d.Primary.Start)
	require.Len(t, d.Properties, 2)
	assert.Equal(t, diag.PropString, d.Properties[0].Kind())
	assert.Equal(t, diag.PropNode, d.Properties[1].Kind())
	require.Len(t, d.Notes, 1)
	assert.Equal(t, uint32(4), d.Notes[0].Span.Start)

	assert.Len(t, res.Declared, 2)
	assert.Equal(t, 1, res.Reported)
}

func TestDuplicateNamesAreNormalised(t *testing.T) {
	// "é" precomposed and as e + combining acute
	src := "int caf\u00e9 = 1;\nint cafe\u0301 = 2;\n"
	_, ds := run(t, src, check.Options{})
	require.Len(t, ds, 1)
	assert.Equal(t, diag.ChkDuplicateName, ds[0].Code)
}

func TestMissingNamesAreIgnored(t *testing.T) {
	_, ds := run(t, "int = 1;\nint = 2;\n", check.Options{})
	assert.Empty(t, ds)
}

func TestIntOverflow(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"max", "int a = 9223372036854775807;", 0},
		{"max+1", "int a = 9223372036854775808;", 1},
		{"min", "int a = -9223372036854775808;", 0},
		{"min-1", "int a = -9223372036854775809;", 1},
		{"in call", "int a = f(99999999999999999999, 1);", 1},
		{"float", "float a = 99999999999999999999.0;", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ds := run(t, tt.src, check.Options{})
			require.Len(t, ds, tt.want)
			for _, d := range ds {
				assert.Equal(t, diag.ChkIntOverflow, d.Code)
				require.Len(t, d.Properties, 2)
				v, ok := d.Properties[1].Int()
				assert.True(t, ok)
				assert.EqualValues(t, int64(9223372036854775807), v)
			}
		})
	}
}

func TestTooManyArgs(t *testing.T) {
	src := "int a = f(1, 2, 3);\nlistener L l = new (1, 2);\nint b = x.m(1, 2, 3, 4);\n"
	_, ds := run(t, src, check.Options{MaxArgs: 2})
	require.Len(t, ds, 2)
	for _, d := range ds {
		assert.Equal(t, diag.ChkTooManyArgs, d.Code)
	}
	n, ok := ds[0].Properties[0].Int()
	require.True(t, ok)
	assert.EqualValues(t, 3, n)
	assert.Equal(t, "call has 4 arguments, the limit is 2", ds[1].Text())

	_, ds = run(t, src, check.Options{MaxArgs: -1})
	assert.Empty(t, ds)
}

func TestUnusedImports(t *testing.T) {
	src := "import ballerina/http;\nimport a.b as c;\nimport x.y;\nimport z as _;\n" +
		"listener http:Listener ep = new;\n"
	res, ds := run(t, src, check.Options{})
	assert.Equal(t, []string{"c", "y"}, res.Unused)
	require.Len(t, ds, 2)
	for _, d := range ds {
		assert.Equal(t, diag.ChkUnusedImport, d.Code)
		assert.Equal(t, diag.SevWarning, d.Severity)
	}
	assert.Equal(t, "unused import 'c'", ds[0].Text())
}

func TestNilTree(t *testing.T) {
	res := check.Check(nil, check.Options{})
	assert.Empty(t, res.Declared)
	assert.Zero(t, res.Reported)
}
