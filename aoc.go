// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: an input fetcher with a disk cache, a forward-only cursor
// parser and a regexp capture helper.
package aoc

import (
	"context"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"reflect"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

// Solver computes both answers for one day's input.
type Solver func(input string) (part1, part2 any, err error)

type sample struct {
	input string
	want  string
}

// Registry holds the solvers and samples of one program.
type Registry struct {
	puzzles []string
	byName  map[string]Solver
	samples map[string]sample
}

func NewRegistry() *Registry {
	return &Registry{
		byName:  map[string]Solver{},
		samples: map[string]sample{},
	}
}

var std = NewRegistry()

// Add registers solvers on the default registry.
func Add(solvers ...Solver) { std.Add(solvers...) }

// ExtractSamples reads samples for the default registry.
func ExtractSamples(fsys fs.FS) { std.MustExtractSamples(fsys) }

func funcName(f Solver) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name()
	return name[strings.LastIndex(name, ".")+1:]
}

func (r *Registry) Add(solvers ...Solver) {
	for _, f := range solvers {
		name := funcName(f)
		r.puzzles = append(r.puzzles, name)
		r.byName[name] = f
	}
}

// Latest returns the name of the last registered solver.
func (r *Registry) Latest() string {
	if len(r.puzzles) == 0 {
		return ""
	}
	return r.puzzles[len(r.puzzles)-1]
}

var wantRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// ExtractSamples scans the doc comments of every .go file in fsys for
//
//	want=<part1> <part2>
//	<sample input>
//
// A sample with no input reuses the previous one in the same file.
func (r *Registry) ExtractSamples(fsys fs.FS) error {
	files, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		if err := r.extractSamples(name, src); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) MustExtractSamples(fsys fs.FS) {
	if err := r.ExtractSamples(fsys); err != nil {
		log.Fatal().Err(err).Msg("parsing source to extract samples")
	}
}

func (r *Registry) extractSamples(filename string, src []byte) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return err
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			if m := wantRx.FindStringSubmatch(text); m != nil {
				in := Or(m[2], lastInput)
				r.samples[fd.Name.Name] = sample{input: in, want: strings.TrimSpace(m[1])}
				lastInput = in
			}
		}
	}
	return nil
}

// Sample returns the sample input and expected answers for name.
func (r *Registry) Sample(name string) (input, want string, ok bool) {
	s, ok := r.samples[name]
	return s.input, s.want, ok
}

// CheckSample runs the named solver on its sample, if it has one.
func (r *Registry) CheckSample(name string) (checked bool, err error) {
	f, ok := r.byName[name]
	if !ok {
		return false, fmt.Errorf("puzzle func %v not registered", name)
	}
	s, ok := r.samples[name]
	if !ok {
		return false, nil
	}
	p1, p2, err := f(s.input)
	if err != nil {
		return true, fmt.Errorf("%v sample: %w", name, err)
	}
	if got := fmt.Sprintf("%v %v", p1, p2); got != s.want {
		return true, fmt.Errorf("%v sample: got=%v; want %v", name, got, s.want)
	}
	return true, nil
}

// DayNumber extracts the day from a solver name like "day14".
func DayNumber(name string) (int, error) {
	m := regexp.MustCompile(`\d+`).FindString(name)
	if m == "" {
		return 0, fmt.Errorf("no digits in func name %q from which to extract day number", name)
	}
	return strconv.Atoi(m)
}

// Run solves the named puzzle for year on input from f and prints the
// answers to w.
func (r *Registry) Run(ctx context.Context, w io.Writer, f *Fetcher, year int, name string) error {
	solve, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("puzzle func %v not registered", name)
	}
	day, err := DayNumber(name)
	if err != nil {
		return err
	}
	input, err := f.Input(ctx, year, day)
	if err != nil {
		return err
	}
	p1, p2, err := solve(input)
	if err != nil {
		return fmt.Errorf("%d day %d: %w", year, day, err)
	}
	fmt.Fprintf(w, "part1: %v\n", p1)
	fmt.Fprintf(w, "part2: %v\n", p2)
	return nil
}

// Main is the entry point of a year's program.
func Main(year int) {
	flagDay := flag.String("day", "", "func name to run; empty string means latest registered. If it starts with a digit, then \"day\" prefix is assumed.")
	flagLevel := flag.String("log-level", "", "log level; overrides AOC_LOG_LEVEL")
	flag.Parse()

	cfg, dotenv := LoadConfig()
	SetupLogging(Or(*flagLevel, cfg.LogLevel))
	if !dotenv {
		log.Debug().Msg("no .env file found")
	}

	name := Or(*flagDay, std.Latest())
	if name == "" {
		log.Fatal().Msg("no puzzles registered")
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "day" + name
	}

	if checked, err := std.CheckSample(name); err != nil {
		log.Fatal().Err(err).Msg("❌ sample failed")
	} else if checked {
		log.Info().Str("puzzle", name).Msg("OK sample result.")
	} else {
		log.Warn().Str("puzzle", name).Msg("⚠️ no sample")
	}

	if err := std.Run(context.Background(), os.Stdout, NewFetcher(cfg), year, name); err != nil {
		log.Fatal().Err(err).Msg("solving")
	}
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Lines splits s on newlines after trimming surrounding whitespace.
// An empty s yields no lines.
func Lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func DigVal(b byte) (int, error) {
	if b >= '0' && b <= '9' {
		return int(b - '0'), nil
	}
	return 0, fmt.Errorf("bogus digit %q", string(b))
}

// Ints parses the whitespace-separated integers in s. A leading '+' is
// allowed.
func Ints(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Fields(s) {
		p := NewParser(f)
		p.TryConsume('+')
		v, err := p.Int()
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f, err)
		}
		if !p.Done() {
			return nil, fmt.Errorf("%q: trailing %q", f, p.Remaining())
		}
		out = append(out, int(v))
	}
	return out, nil
}
