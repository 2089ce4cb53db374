package prompt

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/grh/internal/output"
)

// ErrInputClosed is returned when the input ends before an answer was given.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on a printer and reads answers line by line.
type Prompter struct {
	in    *bufio.Reader
	out   *output.Printer
	echo  bool
	width int
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithWidth truncates list items so each rendered line fits width columns.
// Zero disables truncation.
func WithWidth(width int) Option {
	return func(p *Prompter) { p.width = width }
}

// New creates a Prompter reading from in and writing to out.
// When in is a file that is not a terminal (answers piped in), each answer
// is echoed so the transcript shows what was chosen.
func New(in io.Reader, out *output.Printer, opts ...Option) *Prompter {
	p := &Prompter{
		in:   bufio.NewReader(in),
		out:  out,
		echo: isPipedFile(in),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func isPipedFile(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// Ask prints question and returns the answer without its line terminator.
func (p *Prompter) Ask(question string) (string, error) {
	p.out.Print(question)
	return p.readLine()
}

// Confirm prints question and reports whether the answer is "y" or "Y".
// Anything else, including an empty answer, declines.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "Y", nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			p.out.Println()
			return "", ErrInputClosed
		}
	}
	line = strings.TrimRight(line, "\r\n")
	if p.echo {
		p.out.Println(line)
	}
	return line, nil
}
