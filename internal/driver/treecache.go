package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"loom/internal/diag"
	"loom/internal/green"
	"loom/internal/kind"
	"loom/internal/source"
)

// Текущая версия схемы; увеличивать при любом изменении wire-структур ниже.
const treeCacheSchemaVersion uint16 = 1

// TreeCache хранит зелёные деревья на диске по хешу содержимого файла.
// Повторный разбор неизменённого файла превращается в декодирование.
// Safe for concurrent use.
type TreeCache struct {
	mu  sync.RWMutex
	dir string
}

type treePayload struct {
	Schema  uint16       `msgpack:"schema"`
	Root    wireNode     `msgpack:"root"`
	Orphans []wireOrphan `msgpack:"orphans,omitempty"`
}

// wireNode: дерево в сериализуемом виде. Absent помечает пустой
// необязательный слот.
type wireNode struct {
	Kind     kind.Kind      `msgpack:"k"`
	Token    bool           `msgpack:"tok,omitempty"`
	Text     string         `msgpack:"t,omitempty"`
	Missing  bool           `msgpack:"m,omitempty"`
	Absent   bool           `msgpack:"a,omitempty"`
	Leading  []wireMinutiae `msgpack:"l,omitempty"`
	Trailing []wireMinutiae `msgpack:"r,omitempty"`
	Diags    []wireDiag     `msgpack:"d,omitempty"`
	Slots    []wireNode     `msgpack:"s,omitempty"`
}

type wireMinutiae struct {
	Kind    kind.Kind `msgpack:"k"`
	Text    string    `msgpack:"t,omitempty"`
	Invalid *wireNode `msgpack:"i,omitempty"`
}

type wireDiag struct {
	Code     diag.Code     `msgpack:"c"`
	Severity diag.Severity `msgpack:"s"`
	Message  string        `msgpack:"m"`
	Props    []wireProp    `msgpack:"p,omitempty"`
}

type wireOrphan struct {
	wireDiag
	Start uint32 `msgpack:"b"`
	End   uint32 `msgpack:"e"`
}

// wireProp: NODE-свойства сохраняются их исходным текстом и после
// чтения становятся STRING.
type wireProp struct {
	Kind    diag.PropertyKind `msgpack:"k"`
	Int     int64             `msgpack:"i,omitempty"`
	Float   float64           `msgpack:"f,omitempty"`
	IsFloat bool              `msgpack:"fl,omitempty"`
	Str     string            `msgpack:"s,omitempty"`
	Items   []wireProp        `msgpack:"x,omitempty"`
}

// OpenTreeCache opens a cache rooted at dir. An empty dir means
// $XDG_CACHE_HOME/loom (or ~/.cache/loom).
func OpenTreeCache(dir string) (*TreeCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "loom")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TreeCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *TreeCache) Dir() string { return c.dir }

func (c *TreeCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первому байту, чтобы не держать тысячи файлов рядом
	return filepath.Join(c.dir, "trees", hexKey[:2], hexKey+".mp")
}

// Put stores the tree of content together with its orphan diagnostics.
func (c *TreeCache) Put(content []byte, root green.Node, orphans []diag.Diagnostic) (err error) {
	if c == nil {
		return nil
	}
	payload := treePayload{
		Schema: treeCacheSchemaVersion,
		Root:   encodeNode(root),
	}
	for _, d := range orphans {
		payload.Orphans = append(payload.Orphans, wireOrphan{
			wireDiag: encodeDiag(d.Code, d.Severity, d.Message, d.Properties),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(contentDigest(content))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode tree: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

// Get looks up the tree of content. Nodes are rebuilt through gc, so a hit
// shares tokens with trees parsed in the same run. Orphans get file's ID.
func (c *TreeCache) Get(content []byte, file source.FileID, gc *green.Cache) (root green.Node, orphans []diag.Diagnostic, ok bool, err error) {
	if c == nil {
		return nil, nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(contentDigest(content)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, false, nil
		}
		return nil, nil, false, err
	}
	defer f.Close()

	var payload treePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, nil, false, fmt.Errorf("decode tree: %w", err)
	}
	if payload.Schema != treeCacheSchemaVersion {
		return nil, nil, false, nil
	}
	root, err = decodeNode(&payload.Root, gc)
	if err != nil {
		return nil, nil, false, err
	}
	for _, o := range payload.Orphans {
		orphans = append(orphans, diag.New(o.Severity, o.Code,
			source.Span{File: file, Start: o.Start, End: o.End}, o.Message, decodeProps(o.Props)...))
	}
	return root, orphans, true, nil
}

// DropAll removes every cached tree.
func (c *TreeCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	trees := filepath.Join(c.dir, "trees")
	old := trees + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(trees, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

func encodeNode(n green.Node) wireNode {
	if n == nil {
		return wireNode{Absent: true}
	}
	w := wireNode{Kind: n.Kind(), Missing: n.IsMissing()}
	for _, d := range n.Diagnostics() {
		w.Diags = append(w.Diags, encodeDiag(d.Code, d.Severity, d.Message, d.Props))
	}
	if tok, ok := n.(*green.Token); ok {
		w.Token = true
		w.Text = tok.Text()
		w.Leading = encodeMinutiae(tok.LeadingMinutiae())
		w.Trailing = encodeMinutiae(tok.TrailingMinutiae())
		return w
	}
	w.Slots = make([]wireNode, n.SlotCount())
	for i := range w.Slots {
		w.Slots[i] = encodeNode(n.Slot(i))
	}
	return w
}

func encodeMinutiae(l *green.MinutiaeList) []wireMinutiae {
	if l.Len() == 0 {
		return nil
	}
	out := make([]wireMinutiae, l.Len())
	for i := range out {
		m := l.Get(i)
		out[i].Kind = m.Kind()
		if inv := m.InvalidToken(); inv != nil {
			w := encodeNode(inv)
			out[i].Invalid = &w
			continue
		}
		out[i].Text = m.Text()
	}
	return out
}

func encodeDiag(code diag.Code, sev diag.Severity, msg string, props []diag.Property) wireDiag {
	return wireDiag{Code: code, Severity: sev, Message: msg, Props: encodeProps(props)}
}

func encodeProps(props []diag.Property) []wireProp {
	if len(props) == 0 {
		return nil
	}
	out := make([]wireProp, len(props))
	for i, p := range props {
		switch p.Kind() {
		case diag.PropNumeric:
			out[i] = wireProp{Kind: diag.PropNumeric, IsFloat: p.IsFloat()}
			if p.IsFloat() {
				out[i].Float, _ = p.Float()
			} else {
				out[i].Int, _ = p.Int()
			}
		case diag.PropCollection:
			out[i] = wireProp{Kind: diag.PropCollection, Items: encodeProps(p.Items())}
		default:
			out[i] = wireProp{Kind: diag.PropString, Str: p.String()}
		}
	}
	return out
}

func decodeProps(ws []wireProp) []diag.Property {
	if len(ws) == 0 {
		return nil
	}
	out := make([]diag.Property, len(ws))
	for i, w := range ws {
		switch w.Kind {
		case diag.PropNumeric:
			if w.IsFloat {
				out[i] = diag.FloatProperty(w.Float)
			} else {
				out[i] = diag.NumericProperty(w.Int)
			}
		case diag.PropCollection:
			out[i] = diag.CollectionProperty(decodeProps(w.Items)...)
		default:
			out[i] = diag.StringProperty(w.Str)
		}
	}
	return out
}

func decodeDiags(ws []wireDiag) []green.Diagnostic {
	if len(ws) == 0 {
		return nil
	}
	out := make([]green.Diagnostic, len(ws))
	for i, w := range ws {
		out[i] = green.Diagnostic{Code: w.Code, Severity: w.Severity, Message: w.Message, Props: decodeProps(w.Props)}
	}
	return out
}

func decodeMinutiae(ws []wireMinutiae, gc *green.Cache) (*green.MinutiaeList, error) {
	if len(ws) == 0 {
		return green.EmptyMinutiae(), nil
	}
	items := make([]*green.Minutiae, len(ws))
	for i := range ws {
		if ws[i].Invalid == nil {
			items[i] = gc.Minutiae(ws[i].Kind, ws[i].Text)
			continue
		}
		n, err := decodeNode(ws[i].Invalid, gc)
		if err != nil {
			return nil, err
		}
		tok, ok := n.(*green.Token)
		if !ok {
			return nil, fmt.Errorf("invalid-node minutiae wraps %s, not a token", n.Kind())
		}
		items[i] = green.NewInvalidNodeMinutiae(tok)
	}
	return gc.MinutiaeList(items...), nil
}

func decodeNode(w *wireNode, gc *green.Cache) (green.Node, error) {
	if w.Absent {
		return nil, nil
	}
	if !w.Kind.Valid() {
		return nil, fmt.Errorf("unknown kind %d in cached tree", w.Kind)
	}
	diags := decodeDiags(w.Diags)
	if w.Token {
		leading, err := decodeMinutiae(w.Leading, gc)
		if err != nil {
			return nil, err
		}
		trailing, err := decodeMinutiae(w.Trailing, gc)
		if err != nil {
			return nil, err
		}
		if w.Missing {
			return green.NewMissingToken(w.Kind, diags...).WithMinutiae(leading, trailing), nil
		}
		tok := gc.Token(w.Kind, w.Text, leading, trailing)
		if len(diags) > 0 {
			tok = tok.WithDiagnostics(diags...)
		}
		return tok, nil
	}

	slots := make([]green.Node, len(w.Slots))
	for i := range w.Slots {
		s, err := decodeNode(&w.Slots[i], gc)
		if err != nil {
			return nil, err
		}
		slots[i] = s
	}
	if w.Kind == kind.List {
		return green.NewList(slots...), nil
	}
	nt, err := gc.Node(w.Kind, slots...)
	if err != nil {
		return nil, err
	}
	if len(diags) > 0 {
		nt = nt.WithDiagnostics(diags...)
	}
	return nt, nil
}
