package glsl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/sema"
)

// Shader is the generated text together with the line tree it came from.
type Shader struct {
	Text string
	Body *Fragment
	// Preamble is the number of synthesized lines before the body.
	Preamble int
}

// Generate lowers a checked file to GLSL. Output is fully determined by the
// AST and the resolved types.
func Generate(b *ast.Builder, fid ast.FileID, res *sema.Result, opt Options) (*Shader, error) {
	if b == nil {
		return nil, errors.New("glsl: nil builder")
	}
	if !fid.IsValid() {
		return nil, errors.New("glsl: invalid file id")
	}
	file := b.Files.Get(fid)
	if file == nil {
		return nil, errors.New("glsl: missing ast file")
	}

	opt = opt.withDefaults()
	g := generator{builder: b, types: res}
	body := &Fragment{}
	for _, itemID := range file.Items {
		frag, err := g.item(itemID)
		if err != nil {
			return nil, err
		}
		body.add(frag)
	}

	preamble := opt.Preamble()
	var sb strings.Builder
	for _, line := range preamble {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(body.Render())
	sb.WriteByte('\n')
	sb.WriteString(opt.EntryStub())

	return &Shader{
		Text:     sb.String(),
		Body:     body,
		Preamble: len(preamble),
	}, nil
}

type generator struct {
	builder *ast.Builder
	types   *sema.Result
}

// internalErr reports an AST shape the parser never produces.
func internalErr(format string, args ...any) error {
	return fmt.Errorf("glsl: %s: %w", fmt.Sprintf(format, args...), diag.ErrInternal)
}

func (g *generator) item(id ast.ItemID) (*Fragment, error) {
	it := g.builder.Items.Get(id)
	if it == nil {
		return nil, internalErr("unknown item %d", id)
	}
	frag := &Fragment{}
	switch it.Kind {
	case ast.ItemStatic:
		st := g.builder.Items.Static(id)
		init, err := g.expr(st.Value)
		if err != nil {
			return nil, err
		}
		frag.line(st.Type.Type.GLSL()+" "+g.name(st.Name)+" = "+init, it.Span, true)

	case ast.ItemSlot:
		slot := g.builder.Items.Slot(id)
		text := "layout(location=" + strconv.FormatUint(uint64(slot.Index), 10) + ") " +
			slot.Direction.GLSL() + " " + slot.Type.Type.GLSL() + " " + g.name(slot.Name)
		frag.line(text, it.Span, true)

	case ast.ItemFn:
		fn := g.builder.Items.Fn(id)
		params := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = p.Type.Type.GLSL() + " " + g.name(p.Name)
		}
		header := fn.Result.Type.GLSL() + " " + g.name(fn.Name) + "(" + strings.Join(params, ",") + ")"
		frag.line(header, fn.Header, false)
		body, err := g.block(fn.Body)
		if err != nil {
			return nil, err
		}
		frag.add(body)

	default:
		return nil, internalErr("unexpected item kind %s", it.Kind)
	}
	return frag, nil
}

func (g *generator) name(id ast.IdentID) string {
	return g.builder.Idents.Get(id).Emitted()
}
