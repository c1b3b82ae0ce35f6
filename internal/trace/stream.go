package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

// Format is the encoding of events written by a StreamTracer or a ring dump.
type Format uint8

const (
	FormatAuto   Format = iota // по расширению OutputPath
	FormatText                 // человекочитаемый
	FormatNDJSON               // по объекту JSON на строку
)

var formatNames = names[Format]{
	what:    "format",
	byValue: []string{FormatAuto: "auto", FormatText: "text", FormatNDJSON: "ndjson"},
	aliases: map[string]Format{"": FormatAuto, "json": FormatNDJSON},
}

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) { return formatNames.parse(s) }

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id,omitempty"`
	ParentID uint64            `json:"parent_id,omitempty"`
	GID      uint64            `json:"gid,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// FormatEvent encodes one event, newline included.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		data, err := json.Marshal(jsonEvent{
			Time:     ev.Time.Format(time.RFC3339Nano),
			Seq:      ev.Seq,
			Kind:     ev.Kind.String(),
			Scope:    ev.Scope.String(),
			SpanID:   ev.SpanID,
			ParentID: ev.ParentID,
			GID:      ev.GID,
			Name:     ev.Name,
			Detail:   ev.Detail,
			Extra:    ev.Extra,
		})
		if err != nil {
			return nil
		}
		return append(data, '\n')
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s #%-5d %-6s", ev.Time.Format("15:04:05.000000"), ev.Seq, ev.Scope)
	switch ev.Kind {
	case KindSpanBegin:
		sb.WriteString(" → ")
	case KindSpanEnd:
		sb.WriteString(" ← ")
	case KindHeartbeat:
		sb.WriteString(" ♡ ")
	default:
		sb.WriteString(" • ")
	}
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	if len(ev.Extra) > 0 {
		// ключи по порядку, иначе вывод нестабилен
		sb.WriteString(" {")
		for i, k := range slices.Sorted(maps.Keys(ev.Extra)) {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%s", k, ev.Extra[k])
		}
		sb.WriteString("}")
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}

// StreamTracer writes events immediately.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	return &StreamTracer{w: w, level: level, format: format}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) && ev.Kind != KindHeartbeat {
		return
	}
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()
	// ошибки записи трейса не должны ронять разбор
	_, _ = t.w.Write(data)
}

func (t *StreamTracer) Flush() error {
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
