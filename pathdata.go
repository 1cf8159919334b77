package sprite

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// pathDataScanner walks the command stream of a path "d" attribute.
// The sprite never reinterprets geometry — shapes are re-emitted as
// markup — so the scanner only checks that the data is well formed:
// known command letters, each followed by arguments of the right arity.
type pathDataScanner struct {
	lex gl.Lexer
}

// ScanPathData validates the path data of one element. The name is
// only used to label diagnostics.
func ScanPathData(name, d string) error {
	l, _ := gl.Lex(name, d)
	s := &pathDataScanner{lex: *l}

	seen := false
	for {
		i := s.lex.NextItem()
		switch {
		case i.Type == gl.ItemError:
			return fmt.Errorf("path data error: %s", i.Value)
		case i.Type == gl.ItemEOS:
			if !seen {
				return fmt.Errorf("path data is empty")
			}
			return nil
		case i.Type == gl.ItemLetter:
			seen = true
			if err := s.scanCommand(i); err != nil {
				return err
			}
		}
	}
}

func (s *pathDataScanner) scanCommand(i gl.Item) error {
	switch i.Value {
	case "M", "m", "L", "l", "T", "t":
		return s.scanTuples(i.Value, 1)
	case "S", "s", "Q", "q":
		return s.scanTuples(i.Value, 2)
	case "C", "c":
		return s.scanTuples(i.Value, 3)
	case "H", "h", "V", "v":
		return s.scanNumbers(i.Value, 1)
	case "A", "a":
		return s.scanNumbers(i.Value, 7)
	case "Z", "z":
		s.lex.ConsumeWhiteSpace()
		return nil
	}
	return fmt.Errorf("unknown path command %q", i.Value)
}

// scanTuples consumes coordinate pairs and requires a non-zero count
// that is a multiple of the command's arity.
func (s *pathDataScanner) scanTuples(cmd string, arity int) error {
	var count int
	s.lex.ConsumeWhiteSpace()
	for s.lex.PeekItem().Type == gl.ItemNumber {
		if _, err := parseTuple(&s.lex); err != nil {
			return fmt.Errorf("command %q: %w", cmd, err)
		}
		count++
		s.lex.ConsumeWhiteSpace()
		s.lex.ConsumeComma()
		s.lex.ConsumeWhiteSpace()
	}
	if count == 0 || count%arity != 0 {
		return fmt.Errorf("command %q expects coordinate pairs in groups of %d, got %d", cmd, arity, count)
	}
	return nil
}

// scanNumbers consumes bare numbers in groups of the command's arity.
func (s *pathDataScanner) scanNumbers(cmd string, arity int) error {
	var count int
	s.lex.ConsumeWhiteSpace()
	for s.lex.PeekItem().Type == gl.ItemNumber {
		if _, err := parseNumber(s.lex.NextItem()); err != nil {
			return fmt.Errorf("command %q: %w", cmd, err)
		}
		count++
		s.lex.ConsumeWhiteSpace()
		s.lex.ConsumeComma()
		s.lex.ConsumeWhiteSpace()
	}
	if count == 0 || count%arity != 0 {
		return fmt.Errorf("command %q expects numbers in groups of %d, got %d", cmd, arity, count)
	}
	return nil
}

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected number, got %q", i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing number %q: %w", i.Value, err)
	}
	return n, nil
}

func parseTuple(l *gl.Lexer) (Tuple, error) {
	var t Tuple
	l.ConsumeWhiteSpace()

	ni := l.NextItem()
	n, err := parseNumber(ni)
	if err != nil {
		return t, err
	}
	t[0] = n

	if l.PeekItem().Type == gl.ItemWSP || l.PeekItem().Type == gl.ItemComma {
		l.ConsumeWhiteSpace()
		l.ConsumeComma()
		l.ConsumeWhiteSpace()
	}

	ni = l.NextItem()
	n, err = parseNumber(ni)
	if err != nil {
		return t, err
	}
	t[1] = n
	return t, nil
}
