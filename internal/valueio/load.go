package valueio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("valueio")

// Longest input line accepted by Tokens. Int and float files may put every value on a single line.
const MaxLineBytes = 64 * 1024 * 1024

type Token struct {
	Text string
	// 1-based line number in the source
	Line int
}

// Splits input into tokens. Anything after a '#' on a line is a comment. If perLine is set, each non-blank line (trimmed) is a single token; otherwise tokens are separated by any whitespace.
func Tokens(r io.Reader, perLine bool) ([]Token, error) {
	var out []Token
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, MaxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		if perLine {
			text = strings.TrimSpace(text)
			if text != "" {
				out = append(out, Token{Text: text, Line: line})
			}
			continue
		}
		for _, f := range strings.Fields(text) {
			out = append(out, Token{Text: f, Line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Parses command-line arguments, one value each.
func FromArgs(kind Kind, args []string) ([]Value, error) {
	out := make([]Value, 0, len(args))
	for i, a := range args {
		v, err := Parse(kind, a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Reads and parses values from r. name is only used in error messages.
func Read(r io.Reader, name string, kind Kind) ([]Value, error) {
	toks, err := Tokens(r, kind.LineOriented())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	out := make([]Value, 0, len(toks))
	for _, tok := range toks {
		v, err := Parse(kind, tok.Text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, tok.Line, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Loads values from several files concurrently. The result keeps file order, and the order of values within each file. The first failure cancels the remaining reads.
func LoadFiles(ctx context.Context, kind Kind, paths []string) ([]Value, error) {
	ctx, span := tracer.Start(ctx, "LoadFiles")
	defer span.End()
	span.SetAttributes(attribute.Int("files", len(paths)), attribute.String("kind", kind.String()))

	results := make([][]Value, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			vals, err := readFile(ctx, p, kind)
			if err != nil {
				return err
			}
			results[i] = vals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]Value, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	span.SetAttributes(attribute.Int("values", total))
	return out, nil
}

func readFile(ctx context.Context, path string, kind Kind) ([]Value, error) {
	_, span := tracer.Start(ctx, "readFile", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer f.Close()
	vals, err := Read(f, path, kind)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("values", len(vals)))
	return vals, nil
}
