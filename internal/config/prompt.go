package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"wildfire/internal/sims/wildfire"
)

// DensityPrompt is shown before reading the density.
const DensityPrompt = "Enter forest density (decimal > 0.0 and <= 1.0):"

// ErrDensityParse is returned when the density is not a decimal number.
var ErrDensityParse = errors.New("density is not a decimal")

// ParseDensity parses and validates a density typed by a person.
func ParseDensity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDensityParse, s)
	}
	if err := wildfire.ValidateDensity(d); err != nil {
		return 0, err
	}
	return d, nil
}

// ReadDensity prints the prompt to w and parses one line from r.
func ReadDensity(r io.Reader, w io.Writer) (float64, error) {
	if _, err := fmt.Fprintln(w, DensityPrompt); err != nil {
		return 0, err
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("read density: %w", err)
	}
	return ParseDensity(line)
}

// PromptDensity asks for the density, with an input form when in is a
// terminal and a plain line read otherwise.
func PromptDensity(in *os.File, out io.Writer) (float64, error) {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return ReadDensity(in, out)
	}

	var value string
	input := huh.NewInput().
		Title("Forest density").
		Description("Chance that a cell holds a tree, greater than 0 and at most 1").
		Placeholder("0.6").
		Value(&value).
		Validate(func(s string) error {
			_, err := ParseDensity(s)
			return err
		})
	form := huh.NewForm(huh.NewGroup(input)).WithInput(in).WithOutput(out)
	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("read density: %w", err)
	}
	return ParseDensity(value)
}
